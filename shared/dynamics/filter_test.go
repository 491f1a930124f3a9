package dynamics

import (
	"fmt"
	"math"
	"testing"

	"github.com/automoto/followball/shared/gamemath"
	"github.com/charmbracelet/harmonica"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const frameDT = 1.0 / 60.0

func TestStepIsDeterministic(t *testing.T) {
	c := NewCoefficients(DampingParameters{Frequency: 1.5, DampingRatio: 0.6, Response: 1.2})
	prev := State{Position: dmath.Vec2{X: 1, Y: 2}, Velocity: dmath.Vec2{X: -3, Y: 0.5}}
	target := dmath.Vec2{X: 10, Y: -4}
	targetVel := dmath.Vec2{X: 7, Y: 1}

	first := Step(c, frameDT, target, targetVel, prev)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Step(c, frameDT, target, targetVel, prev))
	}
	assert.NotEqual(t, prev, first)
}

func TestStepZeroDTIsIdentity(t *testing.T) {
	c := NewCoefficients(DampingParameters{Frequency: 2, DampingRatio: 1, Response: 0.5})
	prev := State{Position: dmath.Vec2{X: 4, Y: -1}, Velocity: dmath.Vec2{X: 2, Y: 3}}

	for _, dt := range []float64{0, -frameDT, math.NaN()} {
		got := Step(c, dt, dmath.Vec2{X: 100, Y: 100}, dmath.Vec2{X: 50, Y: -50}, prev)
		assert.Equal(t, prev, got, "dt=%v", dt)
	}
}

func TestStepConvergesToHeldTarget(t *testing.T) {
	tests := []struct {
		name   string
		params DampingParameters
	}{
		{"critical", DampingParameters{Frequency: 2, DampingRatio: 1, Response: 0}},
		{"underdamped with anticipation", DampingParameters{Frequency: 1, DampingRatio: 0.5, Response: 2}},
		{"overdamped", DampingParameters{Frequency: 0.5, DampingRatio: 1.5, Response: 0}},
		{"stiff", DampingParameters{Frequency: 40, DampingRatio: 1, Response: 1}},
	}
	target := dmath.Vec2{X: 3, Y: -7}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoefficients(tt.params)
			s := State{}
			for i := 0; i < 600; i++ {
				s = Step(c, frameDT, target, dmath.Vec2{}, s)
				require.True(t, gamemath.IsFiniteVec(s.Position), "diverged at tick %d", i)
			}
			assert.Less(t, s.Position.Sub(target).Magnitude(), 1e-3)
			assert.Less(t, s.Velocity.Magnitude(), 1e-2)
		})
	}
}

func TestStepCriticalDampingAcrossFrequencies(t *testing.T) {
	// From 2 Hz, where the configured k2 is used as-is, up to just below the
	// k2 snap threshold, where the discrete poles have to be matched.
	for _, freq := range []float64{2, 20, 30, 100, 1e4, 1e5} {
		t.Run(fmt.Sprintf("f=%g", freq), func(t *testing.T) {
			c := NewCoefficients(DampingParameters{Frequency: freq, DampingRatio: 1, Response: 0})
			require.Greater(t, c.K2, minK2)
			target := dmath.Vec2{X: 10}
			s := State{}

			for i := 0; i < 600; i++ {
				s = Step(c, frameDT, target, dmath.Vec2{}, s)
				require.LessOrEqual(t, s.Position.X, target.X+1e-9, "overshoot at tick %d", i)
			}
			assert.InDelta(t, target.X, s.Position.X, 1e-3)
			assert.Less(t, s.Velocity.Magnitude(), 1e-2)
		})
	}
}

func TestStepUnderdampedSettlesAtHighFrequency(t *testing.T) {
	c := NewCoefficients(DampingParameters{Frequency: 500, DampingRatio: 0.3, Response: 1})
	target := dmath.Vec2{X: -4, Y: 9}
	s := State{}

	for i := 0; i < 600; i++ {
		s = Step(c, frameDT, target, dmath.Vec2{}, s)
		require.True(t, gamemath.IsFiniteVec(s.Position), "diverged at tick %d", i)
	}
	assert.Less(t, s.Position.Sub(target).Magnitude(), 1e-3)
}

func TestStepIgnoresNonFiniteTarget(t *testing.T) {
	c := NewCoefficients(DampingParameters{Frequency: 2, DampingRatio: 1})
	prev := State{Position: dmath.Vec2{X: 1, Y: 1}}

	assert.Equal(t, prev, Step(c, frameDT, dmath.Vec2{X: math.NaN()}, dmath.Vec2{}, prev))
	assert.Equal(t, prev, Step(c, frameDT, dmath.Vec2{}, dmath.Vec2{Y: math.Inf(1)}, prev))
}

func TestStepMatchesAnalyticSpring(t *testing.T) {
	const freq = 2.0
	c := NewCoefficients(DampingParameters{Frequency: freq, DampingRatio: 1, Response: 0})
	spring := harmonica.NewSpring(harmonica.FPS(60), 2*math.Pi*freq, 1)

	s := State{}
	pos, vel := 0.0, 0.0
	for i := 0; i < 120; i++ {
		s = Step(c, frameDT, dmath.Vec2{X: 10}, dmath.Vec2{}, s)
		pos, vel = spring.Update(pos, vel, 10)
		require.InDelta(t, pos, s.Position.X, 0.5, "tick %d", i)
	}
}

func TestStepK2UnderflowSnapsToTarget(t *testing.T) {
	c := Coefficients{K1: 0, K2: 0, K3: 0}
	target := dmath.Vec2{X: 5, Y: 6}
	targetVel := dmath.Vec2{X: 1, Y: -1}

	got := Step(c, frameDT, target, targetVel, State{})
	assert.Equal(t, State{Position: target, Velocity: targetVel}, got)

	huge := NewCoefficients(DampingParameters{Frequency: 1e200, DampingRatio: 1})
	got = Step(huge, frameDT, target, targetVel, State{})
	assert.True(t, gamemath.IsFiniteVec(got.Position))
	assert.Equal(t, target, got.Position)
}

func TestStepClampsLongFrames(t *testing.T) {
	c := NewCoefficients(DampingParameters{Frequency: 2, DampingRatio: 1, Response: 0.5})
	prev := State{Velocity: dmath.Vec2{X: 1}}
	target := dmath.Vec2{X: 10, Y: 10}

	stalled := Step(c, 5.0, target, dmath.Vec2{}, prev)
	clamped := Step(c, MaxStep, target, dmath.Vec2{}, prev)
	assert.Equal(t, clamped, stalled)
}

func TestStepResponseAnticipatesTargetVelocity(t *testing.T) {
	lazy := NewCoefficients(DampingParameters{Frequency: 1, DampingRatio: 1, Response: 0})
	eager := NewCoefficients(DampingParameters{Frequency: 1, DampingRatio: 1, Response: 2})
	targetVel := dmath.Vec2{X: 30}

	var a, b State
	for i := 0; i < 10; i++ {
		a = Step(lazy, frameDT, dmath.Vec2{}, targetVel, a)
		b = Step(eager, frameDT, dmath.Vec2{}, targetVel, b)
	}
	assert.Zero(t, a.Velocity.X)
	assert.Greater(t, b.Velocity.X, 0.0)
}

func TestFilterCarriesState(t *testing.T) {
	c := NewCoefficients(DampingParameters{Frequency: 2, DampingRatio: 1})
	f := NewFilter(c, State{})
	target := dmath.Vec2{X: 1}

	want := Step(c, frameDT, target, dmath.Vec2{}, State{})
	want = Step(c, frameDT, target, dmath.Vec2{}, want)

	f.Update(frameDT, target, dmath.Vec2{})
	got := f.Update(frameDT, target, dmath.Vec2{})
	assert.Equal(t, want, got)
	assert.Equal(t, want, f.State())
	assert.Equal(t, c, f.Coefficients())
}
