package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/automoto/followball/shared/dynamics"
	"github.com/automoto/followball/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every scene validation failure.
var ErrInvalid = errors.New("invalid scene config")

// FieldError names the scene field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

func fieldErr(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Ball describes one of the two balls.
type Ball struct {
	Size             float64   `yaml:"size"`
	StartingPosition []float64 `yaml:"starting_position"`
	Color            *Color    `yaml:"color"`
}

// Start returns the starting position in the 2D plane; z is ignored.
func (b Ball) Start() dmath.Vec2 {
	if len(b.StartingPosition) < 2 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: b.StartingPosition[0], Y: b.StartingPosition[1]}
}

// Damping holds the follower tuning. Strength is the damping ratio.
type Damping struct {
	Frequency *float64 `yaml:"frequency"`
	Strength  *float64 `yaml:"strength"`
	Response  *float64 `yaml:"response"`
}

// Scene is the document loaded once at startup.
type Scene struct {
	MainBall     *Ball    `yaml:"main_ball"`
	FollowerBall *Ball    `yaml:"follower_ball"`
	Damping      *Damping `yaml:"damping"`
}

// Parameters converts the validated damping section.
func (s *Scene) Parameters() dynamics.DampingParameters {
	return dynamics.DampingParameters{
		Frequency:    *s.Damping.Frequency,
		DampingRatio: *s.Damping.Strength,
		Response:     *s.Damping.Response,
	}
}

// Load reads and validates a scene from fsys. Pass an embed.FS for the
// bundled default or os.DirFS for a file on disk.
func Load(fsys fs.FS, path string) (*Scene, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene document. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalid)
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every field and reports the first one that fails.
func (s *Scene) Validate() error {
	if err := validateBall("main_ball", s.MainBall); err != nil {
		return err
	}
	if err := validateBall("follower_ball", s.FollowerBall); err != nil {
		return err
	}
	return validateDamping(s.Damping)
}

func validateBall(name string, b *Ball) error {
	if b == nil {
		return fieldErr(name, "missing")
	}
	if !gamemath.IsFinite(b.Size) || b.Size <= 0 {
		return fieldErr(name+".size", "must be > 0 (got %v)", b.Size)
	}
	if len(b.StartingPosition) != 3 {
		return fieldErr(name+".starting_position", "must have 3 components (got %d)", len(b.StartingPosition))
	}
	for i, v := range b.StartingPosition {
		if !gamemath.IsFinite(v) {
			return fieldErr(fmt.Sprintf("%s.starting_position[%d]", name, i), "must be finite")
		}
	}
	if b.Color == nil {
		return fieldErr(name+".color", "missing")
	}
	if !b.Color.inRange() {
		return fieldErr(name+".color", "components must be within [0, 1]")
	}
	return nil
}

func validateDamping(d *Damping) error {
	if d == nil {
		return fieldErr("damping", "missing")
	}
	if d.Frequency == nil {
		return fieldErr("damping.frequency", "missing")
	}
	if d.Strength == nil {
		return fieldErr("damping.strength", "missing")
	}
	if d.Response == nil {
		return fieldErr("damping.response", "missing")
	}

	p := dynamics.DampingParameters{Frequency: *d.Frequency, DampingRatio: *d.Strength, Response: *d.Response}
	if err := p.Validate(); err != nil {
		switch {
		case errors.Is(err, dynamics.ErrFrequency):
			return fieldErr("damping.frequency", "must be > 0 (got %v)", p.Frequency)
		case errors.Is(err, dynamics.ErrDampingRatio):
			return fieldErr("damping.strength", "must be >= 0 (got %v)", p.DampingRatio)
		default:
			return fieldErr("damping.response", "must be finite (got %v)", p.Response)
		}
	}
	return nil
}
