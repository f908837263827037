// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"strings"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Satellite name like "G01"
type SatType string

func (s SatType) Sys() byte {
	return s[0]
}

// Satellite name and ECEF position for correction computation
type SatPos struct {
	Sat SatType
	Pos PosXYZ
}

type CorrOpt struct {
	Humi   float64    // Relative humidity (0-1) for the wet delay
	ElMask float64    // Elevation mask [deg]
	Mapper TropMapper // Mapping model, selected at configuration time
}

func NewCorrOpt() *CorrOpt {
	return &CorrOpt{
		Humi:   0.7,   // Standard relative humidity
		ElMask: 15,    // Elevation mask [deg]
		Mapper: NMF{}, // Built-in Niell mapping function
	}
}

// TropCorr computes the slant tropospheric correction [m] for each satellite
// as zhd*mapfh + zwd*mapfw, to be subtracted from the range measurements.
// The result vector is aligned with the returned satellite list, which is
// sorted in the conventional system order. Satellites below the elevation
// mask or outside the model domain get a zero correction.
func TropCorr(t *GTime, rcv *PosLLH, sats []SatPos, opt *CorrOpt) (*mat.VecDense, []SatType) {
	if len(sats) == 0 {
		return nil, nil
	}
	s2 := make([]SatPos, len(sats))
	copy(s2, sats)
	slices.SortFunc(s2, func(a, b SatPos) int {
		return satCmp(a.Sat, b.Sat)
	})

	zhd, zwd := TropZenith(rcv, opt.Humi)

	v := mat.NewVecDense(len(s2), nil)
	names := make([]SatType, len(s2))
	for i, s := range s2 {
		names[i] = s.Sat
		ang := rcv.LookAngle(s.Pos)
		if opt.ElMask > 0 && ToDeg(ang.El) < opt.ElMask {
			PrintD(3, "\t%s: elev=%f < %f\n", s.Sat, ToDeg(ang.El), opt.ElMask)
			continue
		}
		mapfh, mapfw := opt.Mapper.TropMapf(t, rcv, ang.El)
		v.SetVec(i, zhd*mapfh+zwd*mapfw)
	}
	if DBG_ >= 2 {
		PrintMat(v.T())
	}
	return v, names
}

// Sort the list of satellite names
func Sorted(s []SatType) []SatType {
	s2 := make([]SatType, len(s))
	copy(s2, s)
	slices.SortFunc(s2, satCmp)
	return s2
}

var sysOrder = map[byte]int{'G': 0, 'J': 1, 'E': 2, 'R': 3, 'C': 4, 'S': 5}

func satCmp(a, b SatType) int {
	if sysOrder[a.Sys()] != sysOrder[b.Sys()] {
		return sysOrder[a.Sys()] - sysOrder[b.Sys()]
	}
	return strings.Compare(string(a), string(b))
}
