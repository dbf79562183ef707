package tank

import (
	"errors"
	"fmt"
	"math"
)

// ErrGeometry indicates frustum parameters that do not describe a valid tank.
var ErrGeometry = errors.New("tank: invalid geometry")

// Frustum is a truncated-cone tank, wider at the top (r1) than at the
// bottom (r2). The height is not supplied directly; it is derived once
// from the total volume:
//
//	V = (pi*h/3) * (r1^2 + r1*r2 + r2^2)
//
// A Frustum is immutable after construction.
type Frustum struct {
	r1     float64 // upper radius (m)
	r2     float64 // lower radius (m)
	volume float64 // m^3
	height float64 // m
}

// NewFrustum builds a tank from the two radii and its total volume in
// liters. r2 may be zero (a full cone); the drained-limit hazard that
// creates is handled by the stepping loop, not here.
func NewFrustum(r1, r2, volumeLiters float64) (*Frustum, error) {
	if r2 < 0 {
		return nil, fmt.Errorf("%w: lower radius %g is negative", ErrGeometry, r2)
	}
	if r1 <= r2 {
		return nil, fmt.Errorf("%w: upper radius %g must exceed lower radius %g", ErrGeometry, r1, r2)
	}
	if volumeLiters <= 0 {
		return nil, fmt.Errorf("%w: volume %g L must be positive", ErrGeometry, volumeLiters)
	}

	volume := volumeLiters / 1000.0
	height := 3 * volume / (math.Pi * (r1*r1 + r1*r2 + r2*r2))

	return &Frustum{r1: r1, r2: r2, volume: volume, height: height}, nil
}

func (f *Frustum) R1() float64 { return f.r1 }
func (f *Frustum) R2() float64 { return f.r2 }

// Volume returns the tank volume in m^3.
func (f *Frustum) Volume() float64 { return f.volume }

// VolumeLiters returns the tank volume in liters, as supplied.
func (f *Frustum) VolumeLiters() float64 { return f.volume * 1000.0 }

// Height returns the derived tank height in meters.
func (f *Frustum) Height() float64 { return f.height }

// RadiusAt returns the wall radius at height h above the bottom, by
// linear interpolation between r2 and r1. The endpoints are exact:
// RadiusAt(0) == r2 and RadiusAt(Height()) == r1. Heights outside
// [0, Height()] clamp to the nearest wall radius.
func (f *Frustum) RadiusAt(h float64) float64 {
	switch {
	case h <= 0:
		return f.r2
	case h >= f.height:
		return f.r1
	}
	return f.r2 + (f.r1-f.r2)*(h/f.height)
}

// CrossSection returns the horizontal cross-sectional area at height h.
// With r2 == 0 this is zero at the bottom; callers stepping toward the
// drained limit must treat that as a zero rate, not divide by it.
func (f *Frustum) CrossSection(h float64) float64 {
	r := f.RadiusAt(h)
	return math.Pi * r * r
}
