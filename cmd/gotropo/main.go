// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	m "github.com/mkhts/gotropo"
)

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt) error {

	// Prepare output file
	out, err := prepareOutput(args)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}
	defer closeOutput(out)

	gt := m.NewGTime(args.t)
	opt := setCorrOpt(&args)

	if m.DBG_ >= 1 {
		m.PrintA("site(llh)  : %14.9f %14.9f %10.4f\n", m.ToDeg(args.pos.Lat), m.ToDeg(args.pos.Lon), args.pos.Hei)
		m.PrintA("epoch      : %s (doy %d)\n", args.t.UTC().Format("2006/01/02 15:04:05"), gt.Doy())
		m.PrintA("humidity   : %.2f\n", opt.Humi)
	}

	switch {
	case len(args.sats) > 0:
		printCorr(out, gt, &args.pos, args.sats, opt)
	case args.scan:
		printScan(out, gt, &args.pos, opt)
	default:
		printPoint(out, gt, &args.pos, args.elev, args.azim, opt)
	}
	return nil
}

// Output delay and mapping factors for a single look angle
func printPoint(out io.Writer, gt *m.GTime, pos *m.PosLLH, elevDeg, azimDeg float64, opt *m.CorrOpt) {
	ang := m.NewLookAngle(m.ToRad(azimDeg), m.ToRad(elevDeg))
	zhd, zwd := m.TropZenith(pos, opt.Humi)
	mapfh, mapfw := opt.Mapper.TropMapf(gt, pos, ang.El)
	delay := m.TropModel(gt, pos, ang, opt.Humi)
	corr := zhd*mapfh + zwd*mapfw

	fmt.Fprintf(out, "%% elev(deg)  zhd(m)     zwd(m)     mapfh      mapfw      saast(m)   mapped(m)  mapped(ns)\n")
	fmt.Fprintf(out, "%9.3f %10.4f %10.4f %10.6f %10.6f %10.4f %10.4f %10.3f\n",
		elevDeg, zhd, zwd, mapfh, mapfw, delay, corr, corr/m.C*1e9)
}

// Output an elevation scan table (5 to 90 deg)
func printScan(out io.Writer, gt *m.GTime, pos *m.PosLLH, opt *m.CorrOpt) {
	fmt.Fprintf(out, "%% elev(deg)  zhd(m)     zwd(m)     mapfh      mapfw      saast(m)   mapped(m)\n")
	zhd, zwd := m.TropZenith(pos, opt.Humi)
	for e := 5.0; e <= 90.0; e += 5.0 {
		ang := m.NewLookAngle(0, m.ToRad(e))
		mapfh, mapfw := opt.Mapper.TropMapf(gt, pos, ang.El)
		delay := m.TropModel(gt, pos, ang, opt.Humi)
		fmt.Fprintf(out, "%9.3f %10.4f %10.4f %10.6f %10.6f %10.4f %10.4f\n",
			e, zhd, zwd, mapfh, mapfw, delay, zhd*mapfh+zwd*mapfw)
	}
}

// Output the correction vector for a satellite list
func printCorr(out io.Writer, gt *m.GTime, pos *m.PosLLH, sats []m.SatPos, opt *m.CorrOpt) {
	v, names := m.TropCorr(gt, pos, sats, opt)
	fmt.Fprintf(out, "%% sat  az(deg)  el(deg)   corr(m)\n")
	for i, sat := range names {
		var ang m.LookAngle
		for _, s := range sats {
			if s.Sat == sat {
				ang = pos.LookAngle(s.Pos)
				break
			}
		}
		fmt.Fprintf(out, "%5s %8.2f %8.2f %9.4f\n", sat, m.ToDeg(ang.Az), m.ToDeg(ang.El), v.AtVec(i))
	}
}

// Prepare output file
func prepareOutput(args cmdOpt) (io.WriteCloser, error) {

	// Use stdout if no output file is specified
	if len(args.outFn) == 0 {
		return &nopCloser{os.Stdout}, nil
	}

	// Create output file
	f, err := os.Create(args.outFn)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// Close output file
func closeOutput(out io.WriteCloser) {
	if out != nil {
		out.Close()
	}
}

// nopCloser - WriteCloser that ignores close operations
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Structure to hold command line argument information
type cmdOpt struct {
	pos      m.PosLLH
	t        time.Time
	elev     float64
	azim     float64
	humi     float64
	scan     bool
	sats     []m.SatPos
	elevMask float64
	outFn    string
}

// Parse command line arguments
func parseArgs() (a cmdOpt, err error) {
	flag.Usage = func() {
		m.PrintA(`
[Usage]
	%s [Options] -l "lat lon hei"                          delay and mapping factors at one elevation
	%s [Options] -l "lat lon hei" -scan                    elevation scan table (5-90 deg)
	%s [Options] -l "lat lon hei" -s "G01 x y z,R05 x y z" correction vector for a satellite list

[Options]
`, filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	cOpt := m.NewCorrOpt()
	flag.Var(&a.pos, "l", "Site latitude/longitude/ellipsoidal height. Enclose in quotes like -l \"35.73101206 139.7396917 80.33\"")
	var t_ m.TimeStr
	flag.TextVar(&t_, "t", m.NewTimeStr(time.Now().UTC()), "Epoch specification. Enclose in quotes like -t \"2025/04/10 00:00:00\"")
	flag.Float64Var(&a.elev, "e", 90, "Elevation angle [deg]")
	flag.Float64Var(&a.azim, "a", 0, "Azimuth angle [deg]")
	flag.Float64Var(&a.humi, "u", cOpt.Humi, "Relative humidity (0-1)")
	flag.BoolVar(&a.scan, "scan", false, "Output an elevation scan table instead of a single point")
	var satStr string
	flag.StringVar(&satStr, "s", "", "Satellite list as \"name x y z\" (ECEF [m]) entries, comma-separated without spaces around commas")
	flag.StringVar(&a.outFn, "o", "", "Output file path. If not specified, output to stdout.")
	var elMask float64
	flag.Float64Var(&elMask, "m", cOpt.ElMask, "Elevation mask [deg] for the satellite list mode. Set to 0 for no mask.")
	var dbg int
	flag.IntVar(&dbg, "x", 0, "Debug information display. Specify level value. 0(OFF), 1(display), 2(detailed display), 3(more detailed)")
	flag.Parse()

	m.DBG_ = dbg
	a.t = time.Time(t_)
	a.elevMask = elMask

	if a.pos.Lat == 0 && a.pos.Lon == 0 && a.pos.Hei == 0 {
		return a, fmt.Errorf("the site position must be specified! (-l option)")
	}
	if len(satStr) > 0 {
		a.sats, err = parseSats(satStr)
		if err != nil {
			return a, fmt.Errorf("invalid satellite list: %w", err)
		}
	}
	return a, nil
}

// Parse a satellite list like "G01 x y z,R05 x y z"
func parseSats(s string) ([]m.SatPos, error) {
	var sats []m.SatPos
	for _, e := range strings.Split(s, ",") {
		f := strings.Fields(e)
		if len(f) != 4 {
			return nil, fmt.Errorf("entry %q must be \"name x y z\"", e)
		}
		var xyz [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(f[i+1], 64)
			if err != nil {
				return nil, err
			}
			xyz[i] = v
		}
		sats = append(sats, m.SatPos{
			Sat: m.SatType(f[0]),
			Pos: *m.NewPosXYZ(xyz[0], xyz[1], xyz[2]),
		})
	}
	return sats, nil
}

func setCorrOpt(args *cmdOpt) *m.CorrOpt {
	opt := m.NewCorrOpt()
	opt.Humi = args.humi
	opt.ElMask = args.elevMask
	return opt
}
