// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.5
//

package gotropo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025/04/10 00:00:00 UTC, day of year 100
func testEpoch() *GTime {
	return NewGTime(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
}

func TestTropModelReference(t *testing.T) {
	assert := assert.New(t)
	pos := NewPosLLH(ToRad(45), 0, 0)
	ang := NewLookAngle(0, ToRad(30))

	// Independent evaluation of the standard atmosphere + Saastamoinen
	// formulas at 45 deg latitude, sea level, 30 deg elevation, 70% humidity
	d := TropModel(testEpoch(), pos, ang, 0.7)
	assert.InDelta(4.854910565, d, 1e-6)
}

func TestTropModelOutOfDomain(t *testing.T) {
	assert := assert.New(t)
	gt := testEpoch()
	pos := NewPosLLH(ToRad(45), 0, 0)

	// Satellite at or below the horizon
	assert.Equal(0.0, TropModel(gt, pos, NewLookAngle(0, 0), 0.7))
	assert.Equal(0.0, TropModel(gt, pos, NewLookAngle(0, ToRad(-5)), 0.7))

	// Site height outside [-100, 10000] m
	ang := NewLookAngle(0, ToRad(30))
	assert.Equal(0.0, TropModel(gt, NewPosLLH(ToRad(45), 0, -150), ang, 0.7))
	assert.Equal(0.0, TropModel(gt, NewPosLLH(ToRad(45), 0, 10001), ang, 0.7))

	// Boundary heights are inside the domain
	assert.Greater(TropModel(gt, NewPosLLH(ToRad(45), 0, -100), ang, 0.7), 0.0)
	assert.Greater(TropModel(gt, NewPosLLH(ToRad(45), 0, 1e4), ang, 0.7), 0.0)
}

func TestTropModelMonotonicInElevation(t *testing.T) {
	assert := assert.New(t)
	gt := testEpoch()
	pos := NewPosLLH(ToRad(45), 0, 0)

	// The slant delay grows strictly as the elevation drops toward the horizon
	prev := TropModel(gt, pos, NewLookAngle(0, ToRad(90)), 0.7)
	for e := 85.0; e >= 5.0; e -= 5.0 {
		d := TropModel(gt, pos, NewLookAngle(0, ToRad(e)), 0.7)
		assert.Greater(d, prev, "elevation %.0f deg", e)
		prev = d
	}
}

func TestTropZenith(t *testing.T) {
	assert := assert.New(t)
	pos := NewPosLLH(ToRad(45), 0, 0)

	// At sea level with zero humidity, the pressure term reduces to the
	// sea-level standard pressure and the wet delay vanishes
	zhd, zwd := TropZenith(pos, 0)
	assert.InDelta(0.0022768*1013.25, zhd, 1e-12)
	assert.Equal(0.0, zwd)

	zhd, zwd = TropZenith(pos, 0.7)
	assert.InDelta(2.3069676, zhd, 1e-9)
	assert.InDelta(0.120487682555, zwd, 1e-9)

	// Out of domain
	zhd, zwd = TropZenith(NewPosLLH(ToRad(45), 0, 10001), 0.7)
	assert.Equal(0.0, zhd)
	assert.Equal(0.0, zwd)
}

func TestTropModelBelowEllipsoid(t *testing.T) {
	assert := assert.New(t)
	gt := testEpoch()
	ang := NewLookAngle(0, ToRad(30))

	// Heights in [-100, 0) are clamped to sea level throughout the formula
	d0 := TropModel(gt, NewPosLLH(ToRad(45), 0, 0), ang, 0.7)
	dn := TropModel(gt, NewPosLLH(ToRad(45), 0, -50), ang, 0.7)
	assert.Equal(d0, dn)
}
