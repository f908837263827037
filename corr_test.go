// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Satellite ECEF position at the given azimuth/elevation [deg] and range [m]
// as seen from the receiver.
func satAt(rcv *PosLLH, azDeg, elDeg, rng float64) PosXYZ {
	az := ToRad(azDeg)
	el := ToRad(elDeg)
	enu := NewPosENU(math.Sin(az)*math.Cos(el)*rng, math.Cos(az)*math.Cos(el)*rng, math.Sin(el)*rng)
	return enu.ToXYZ(rcv.ToXYZ())
}

func TestTropCorrSingle(t *testing.T) {
	assert := assert.New(t)
	rcv := NewPosLLH(ToRad(45), 0, 0)
	sats := []SatPos{{Sat: "G01", Pos: satAt(rcv, 0, 30, 2e7)}}

	v, names := TropCorr(testEpoch(), rcv, sats, NewCorrOpt())
	assert.Equal([]SatType{"G01"}, names)
	assert.Equal(1, v.Len())

	// zhd*mapfh + zwd*mapfw at 30 deg elevation, 70% humidity
	assert.InDelta(4.837660595, v.AtVec(0), 1e-6)
}

func TestTropCorrOrderAndMask(t *testing.T) {
	assert := assert.New(t)
	rcv := NewPosLLH(ToRad(45), 0, 0)
	sats := []SatPos{
		{Sat: "R05", Pos: satAt(rcv, 120, 30, 2e7)},
		{Sat: "E01", Pos: satAt(rcv, 200, 5, 2e7)},
		{Sat: "G02", Pos: satAt(rcv, 45, 60, 2e7)},
	}

	v, names := TropCorr(testEpoch(), rcv, sats, NewCorrOpt())

	// Conventional system order, not input order
	assert.Equal([]SatType{"G02", "E01", "R05"}, names)

	// E01 sits below the 15 deg elevation mask and gets no correction
	assert.Greater(v.AtVec(0), 0.0)
	assert.Equal(0.0, v.AtVec(1))
	assert.Greater(v.AtVec(2), 0.0)

	// The lower satellite accumulates more delay
	assert.Greater(v.AtVec(2), v.AtVec(0))
}

func TestTropCorrEmpty(t *testing.T) {
	assert := assert.New(t)
	v, names := TropCorr(testEpoch(), NewPosLLH(ToRad(45), 0, 0), nil, NewCorrOpt())
	assert.Nil(v)
	assert.Nil(names)
}

func TestSorted(t *testing.T) {
	assert := assert.New(t)
	s := Sorted([]SatType{"R05", "G02", "C01", "J03", "G01"})
	assert.Equal([]SatType{"G01", "G02", "J03", "R05", "C01"}, s)
}
