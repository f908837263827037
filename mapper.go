// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"math"
)

// TropMapper computes dry and wet tropospheric mapping factors for a site and
// elevation. The mapping model is selected once when the caller is configured;
// the numeric code never switches models at run time.
type TropMapper interface {
	TropMapf(t *GTime, pos *PosLLH, elev float64) (mapfh, mapfw float64)
}

// NMF is the built-in Niell mapping function model.
type NMF struct{}

func (NMF) TropMapf(t *GTime, pos *PosLLH, elev float64) (float64, float64) {
	return TropMapf(t, pos, elev)
}

// GeoidModel returns the geoid height [m] above the ellipsoid at a position.
type GeoidModel interface {
	GeoidH(pos *PosLLH) float64
}

// MapFunc is an externally supplied mapping routine such as GMF.
// Arguments are modified Julian date, latitude/longitude [rad], height above
// the geoid [m] and zenith distance [rad].
type MapFunc func(mjd, lat, lon, hgt, zd float64) (mapfh, mapfw float64)

// ExtMapper delegates mapping factor computation to an external routine,
// converting the epoch to a modified Julian date and the ellipsoidal height
// to height above the geoid. The same domain guards as NMF apply before
// delegation.
type ExtMapper struct {
	Geoid GeoidModel
	Func  MapFunc
}

func (m *ExtMapper) TropMapf(t *GTime, pos *PosLLH, elev float64) (float64, float64) {
	if pos.Hei < -1000.0 || pos.Hei > 20000.0 || elev <= 0.0 {
		return 0.0, 0.0
	}
	hgt := pos.Hei - m.Geoid.GeoidH(pos) // height above mean sea level
	zd := math.Pi/2.0 - elev
	return m.Func(t.ToMJD(), pos.Lat, pos.Lon, hgt, zd)
}
