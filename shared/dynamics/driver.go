package dynamics

import dmath "github.com/yohamta/donburi/features/math"

// EntityID names the two entities a Driver publishes.
type EntityID int

const (
	MainEntity EntityID = iota
	FollowerEntity
)

func (id EntityID) String() string {
	switch id {
	case MainEntity:
		return "main"
	case FollowerEntity:
		return "follower"
	}
	return "unknown"
}

// Sampler returns the pointer position in world coordinates, or false when
// the pointer is outside the trackable surface.
type Sampler interface {
	Sample() (dmath.Vec2, bool)
}

type SamplerFunc func() (dmath.Vec2, bool)

func (f SamplerFunc) Sample() (dmath.Vec2, bool) { return f() }

// Sink receives the positions to render, once per entity per tick.
type Sink interface {
	Publish(id EntityID, pos dmath.Vec2)
}

type SinkFunc func(id EntityID, pos dmath.Vec2)

func (f SinkFunc) Publish(id EntityID, pos dmath.Vec2) { f(id, pos) }

// Driver runs the per-frame pipeline: sample, estimate the main velocity,
// step the follower, publish. It is the only writer of both states.
type Driver struct {
	main     State
	follower *Filter
	sampler  Sampler
	sink     Sink
}

// NewDriver creates a driver with both entities at rest.
func NewDriver(c Coefficients, mainStart, followerStart dmath.Vec2, s Sampler, k Sink) *Driver {
	return &Driver{
		main:     State{Position: mainStart},
		follower: NewFilter(c, State{Position: followerStart}),
		sampler:  s,
		sink:     k,
	}
}

// Tick runs exactly one pipeline pass for a frame of length dt.
func (d *Driver) Tick(dt float64) {
	if pos, ok := d.sampler.Sample(); ok {
		if dt > 0 {
			d.main.Velocity = pos.Sub(d.main.Position).DivScalar(dt)
		}
		d.main.Position = pos
	} else {
		// Held in place, so there is no observed motion to drive with.
		d.main.Velocity = dmath.Vec2{}
	}

	follower := d.follower.Update(dt, d.main.Position, d.main.Velocity)

	if d.sink != nil {
		d.sink.Publish(MainEntity, d.main.Position)
		d.sink.Publish(FollowerEntity, follower.Position)
	}
}

func (d *Driver) Main() State {
	return d.main
}

func (d *Driver) Follower() State {
	return d.follower.State()
}

func (d *Driver) Coefficients() Coefficients {
	return d.follower.Coefficients()
}
