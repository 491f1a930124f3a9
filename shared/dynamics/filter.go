package dynamics

import (
	"math"

	"github.com/automoto/followball/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	// MaxStep caps a single integration step. Anything longer (window drag,
	// breakpoint, GC stall) is integrated as one frame at 30 fps.
	MaxStep = 1.0 / 30.0

	// Below this k2 the follower snaps to the target instead of dividing.
	minK2 = 1e-12
)

// State is the position/velocity pair of a moving entity.
type State struct {
	Position dmath.Vec2
	Velocity dmath.Vec2
}

// Step advances the follower by dt toward targetPos, using targetVel as the
// driving signal for the k3 term. It is pure: the same inputs always give the
// same output and prev is not modified.
//
// Position moves with the previous velocity, then velocity is updated from
// the new position.
func Step(c Coefficients, dt float64, targetPos, targetVel dmath.Vec2, prev State) State {
	if !(dt > 0) || !gamemath.IsFiniteVec(targetPos) || !gamemath.IsFiniteVec(targetVel) {
		return prev
	}
	dt = gamemath.Clamp(dt, 0, MaxStep)

	if !gamemath.IsFinite(c.K2) || c.K2 <= minK2 {
		return State{Position: targetPos, Velocity: targetVel}
	}

	k1, k2, ok := stableK(c, dt)
	if !ok {
		return State{Position: targetPos, Velocity: targetVel}
	}

	pos := prev.Position.Add(prev.Velocity.MulScalar(dt))
	accel := targetPos.
		Add(targetVel.MulScalar(c.K3)).
		Sub(pos).
		Sub(prev.Velocity.MulScalar(k1)).
		DivScalar(k2)
	vel := prev.Velocity.Add(accel.MulScalar(dt))

	return State{Position: pos, Velocity: vel}
}

// stableK returns the k1, k2 actually integrated with at this dt.
//
// While w·dt < z the configured k1 is kept and k2 is raised just enough to
// keep the discrete system stable. Past that the discrete poles are placed
// where the continuous system's poles land after dt (exp(s·dt)), which stays
// stable and, for z >= 1, free of overshoot at any frequency. ok is false
// when no finite k2 exists (undamped with w·dt a multiple of 2π).
func stableK(c Coefficients, dt float64) (k1, k2 float64, ok bool) {
	w := 1 / math.Sqrt(c.K2)
	z := c.K1 * w / 2

	if w*dt < z {
		return c.K1, math.Max(c.K2, math.Max(dt*dt/2+dt*c.K1/2, dt*c.K1)), true
	}

	var alpha float64
	if z <= 1 {
		alpha = 2 * math.Exp(-z*w*dt) * math.Cos(w*dt*math.Sqrt(1-z*z))
	} else {
		// Written as two exponentials so cosh cannot overflow.
		d := w * math.Sqrt(z*z-1)
		alpha = math.Exp(-(z*w-d)*dt) + math.Exp(-(z*w+d)*dt)
	}
	beta := math.Exp(-2 * z * w * dt)

	denom := 1 + beta - alpha
	if !(denom > 1e-12) {
		return 0, 0, false
	}
	t2 := dt / denom
	return (1 - beta) * t2, dt * t2, true
}

// Filter is a Step wrapper that carries its own state between frames.
type Filter struct {
	coeffs Coefficients
	state  State
}

func NewFilter(c Coefficients, initial State) *Filter {
	return &Filter{coeffs: c, state: initial}
}

// Update steps the filter and returns the new state.
func (f *Filter) Update(dt float64, targetPos, targetVel dmath.Vec2) State {
	f.state = Step(f.coeffs, dt, targetPos, targetVel, f.state)
	return f.state
}

func (f *Filter) State() State {
	return f.state
}

func (f *Filter) Coefficients() Coefficients {
	return f.coeffs
}
