// This code is adapted from RTKLIB.
// The author gratefully acknowledges T.Takasu for his outstanding contribution in developing RTKLIB.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"math"
)

// Niell mapping function coefficients (Niell 1996, table 3).
// hydro-ave-a,b,c, hydro-amp-a,b,c, wet-a,b,c at latitude 15,30,45,60,75 deg.
var nmfCoef = [9][5]float64{
	{1.2769934e-3, 1.2683230e-3, 1.2465397e-3, 1.2196049e-3, 1.2045996e-3},
	{2.9153695e-3, 2.9152299e-3, 2.9288445e-3, 2.9022565e-3, 2.9024912e-3},
	{62.610505e-3, 62.837393e-3, 63.721774e-3, 63.824265e-3, 64.258455e-3},

	{0.0000000e-0, 1.2709626e-5, 2.6523662e-5, 3.4000452e-5, 4.1202191e-5},
	{0.0000000e-0, 2.1414979e-5, 3.0160779e-5, 7.2562722e-5, 11.723375e-5},
	{0.0000000e-0, 9.0128400e-5, 4.3497037e-5, 84.795348e-5, 170.37206e-5},

	{5.8021897e-4, 5.6794847e-4, 5.8118019e-4, 5.9727542e-4, 6.1641693e-4},
	{1.4275268e-3, 1.5138625e-3, 1.4572752e-3, 1.5007428e-3, 1.7599082e-3},
	{4.3472961e-2, 4.6729510e-2, 4.3908931e-2, 4.4626982e-2, 5.4736038e-2},
}

// height correction coefficients
var nmfAht = [3]float64{2.53e-5, 5.49e-3, 1.14e-3}

// TropMapf computes the dry and wet tropospheric mapping function by NMF.
// Returns (0, 0) when the site height is outside [-1000, 20000] m or the
// satellite is at or below the horizon.
func TropMapf(t *GTime, pos *PosLLH, elev float64) (mapfh, mapfw float64) {
	if pos.Hei < -1000.0 || pos.Hei > 20000.0 {
		return 0.0, 0.0
	}
	return nmf(t, pos, elev)
}

func nmf(t *GTime, pos *PosLLH, elev float64) (float64, float64) {
	if elev <= 0.0 {
		return 0.0, 0.0
	}
	lat := ToDeg(pos.Lat)
	hgt := pos.Hei

	// year from doy 28, added half a year for southern latitudes
	y := (float64(t.Doy()) - 28.0) / 365.25
	if lat < 0.0 {
		y += 0.5
	}
	cosy := math.Cos(2 * math.Pi * y)
	lat = math.Abs(lat)

	ah := [3]float64{}
	aw := [3]float64{}
	for i := 0; i < 3; i++ {
		ah[i] = interpc(nmfCoef[i], lat) - interpc(nmfCoef[i+3], lat)*cosy
		aw[i] = interpc(nmfCoef[i+6], lat)
	}

	// ellipsoidal height is used instead of height above sea level
	dm := (1.0/math.Sin(elev) - mapf(elev, nmfAht[0], nmfAht[1], nmfAht[2])) * hgt / 1e3

	return mapf(elev, ah[0], ah[1], ah[2]) + dm, mapf(elev, aw[0], aw[1], aw[2])
}

func interpc(coef [5]float64, lat float64) float64 {
	i := int(lat / 15.0)
	if i < 1 {
		return coef[0]
	} else if i > 4 {
		return coef[4]
	}
	return coef[i-1]*(1.0-lat/15.0+float64(i)) + coef[i]*(lat/15.0-float64(i))
}

func mapf(el, a, b, c float64) float64 {
	sinel := math.Sin(el)
	return (1.0 + a/(1.0+b/(1.0+c))) / (sinel + (a / (sinel + b/(sinel+c))))
}
