// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"fmt"
)

// Line-of-sight geometry from a receiver to a satellite.
// Azimuth/elevation in radians. El <= 0 means the satellite is not observable.
type LookAngle struct {
	Az float64
	El float64
}

func NewLookAngle(az, el float64) *LookAngle {
	return &LookAngle{
		Az: az,
		El: el,
	}
}

// LookAngle computes the azimuth and elevation from the receiver to a
// satellite ECEF position.
func (usr *PosLLH) LookAngle(sat PosXYZ) LookAngle {
	xyz := usr.ToXYZ()
	enu := sat.ToENU(xyz)
	return LookAngle{
		Az: enu.Azimuth(),
		El: enu.Elevation(),
	}
}

func (ang *LookAngle) String() string {
	return fmt.Sprintf("%6.2f %5.2f", ToDeg(ang.Az), ToDeg(ang.El))
}
