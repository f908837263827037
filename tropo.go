// This code is adapted from RTKLIB.
// The author gratefully acknowledges T.Takasu for his outstanding contribution in developing RTKLIB.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"math"
)

// TropModel computes the slant tropospheric delay [m] by the standard
// atmosphere and Saastamoinen model.
// Returns 0 when the site height is outside [-100, 10000] m or the satellite
// is at or below the horizon, meaning no correction is applicable.
// Note that the delay grows without bound as the elevation approaches 0;
// use a mapping function instead near the horizon.
func TropModel(t *GTime, pos *PosLLH, ang *LookAngle, humi float64) float64 {
	if pos.Hei < -100.0 || 1e4 < pos.Hei || ang.El <= 0.0 {
		return 0.0
	}
	zhd, zwd := tropZenith(pos, humi)
	z := math.Pi/2.0 - ang.El
	return (zhd + zwd) / math.Cos(z)
}

// TropZenith computes the zenith hydrostatic and wet delay [m] separately,
// for use with a mapping function. Returns (0, 0) when the site height is
// outside [-100, 10000] m.
func TropZenith(pos *PosLLH, humi float64) (float64, float64) {
	if pos.Hei < -100.0 || 1e4 < pos.Hei {
		return 0.0, 0.0
	}
	return tropZenith(pos, humi)
}

func tropZenith(pos *PosLLH, humi float64) (zhd, zwd float64) {
	const TEMP0 = 15.0 // temperature at sea level [degC]

	// standard atmosphere
	hgt := pos.Hei
	if hgt < 0.0 {
		hgt = 0.0
	}
	pres := 1013.25 * math.Pow(1.0-2.2557e-5*hgt, 5.2568)
	temp := TEMP0 - 6.5e-3*hgt + 273.16
	e := 6.108 * humi * math.Exp((17.15*temp-4684.0)/(temp-38.45))

	// saastamoinen model
	zhd = 0.0022768 * pres / (1.0 - 0.00266*math.Cos(2.0*pos.Lat) - 0.00028*hgt/1e3)
	zwd = 0.002277 * (1255.0/temp + 0.05) * e
	return zhd, zwd
}
