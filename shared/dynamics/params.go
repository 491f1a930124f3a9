// Package dynamics implements the second-order damped follower used to trail
// the pointer-driven ball. It uses donburi's math.Vec2 but no ebiten or ECS
// types, so it can be stepped deterministically in tests.
package dynamics

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/followball/shared/gamemath"
)

var (
	ErrFrequency    = errors.New("frequency must be a finite value > 0")
	ErrDampingRatio = errors.New("damping ratio must be a finite value >= 0")
	ErrResponse     = errors.New("response must be finite")
)

// DampingParameters are the physical tuning knobs of the follower.
type DampingParameters struct {
	Frequency    float64 // natural frequency in Hz
	DampingRatio float64 // 0 = undamped, 1 = critical, >1 = sluggish
	Response     float64 // <0 anticipates backwards, >1 overshoots the target
}

// Validate rejects parameters that cannot produce a usable filter.
func (p DampingParameters) Validate() error {
	if !gamemath.IsFinite(p.Frequency) || p.Frequency <= 0 {
		return fmt.Errorf("%w (got %v)", ErrFrequency, p.Frequency)
	}
	if !gamemath.IsFinite(p.DampingRatio) || p.DampingRatio < 0 {
		return fmt.Errorf("%w (got %v)", ErrDampingRatio, p.DampingRatio)
	}
	if !gamemath.IsFinite(p.Response) {
		return fmt.Errorf("%w (got %v)", ErrResponse, p.Response)
	}
	return nil
}

// Coefficients are derived from DampingParameters once and never mutated.
type Coefficients struct {
	K1 float64 // damping
	K2 float64 // response delay, 1/omega^2
	K3 float64 // anticipation of the target velocity
}

// NewCoefficients derives k1, k2, k3:
//
//	k1 = z / (pi f)
//	k2 = 1 / (2 pi f)^2
//	k3 = r z / (2 pi f)
func NewCoefficients(p DampingParameters) Coefficients {
	w := 2 * math.Pi * p.Frequency
	return Coefficients{
		K1: p.DampingRatio / (math.Pi * p.Frequency),
		K2: 1 / (w * w),
		K3: p.Response * p.DampingRatio / w,
	}
}
