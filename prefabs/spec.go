package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// RangeSpec is either a scalar (fixed value) or {min, max}.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r *RangeSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("range: %w", err)
		}
		r.Min, r.Max = v, v
		return nil
	}
	type plain RangeSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	*r = RangeSpec(p)
	return nil
}

// TweenSpec is a start-to-end interpolation over a particle's life.
type TweenSpec struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

type OffsetSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EmitterSpec struct {
	Frames     []string  `yaml:"frames"`
	Scale      TweenSpec `yaml:"scale"`
	Alpha      TweenSpec `yaml:"alpha"`
	LifespanMS int       `yaml:"lifespan_ms"`
	SpeedX     RangeSpec `yaml:"speed_x"`
	SpeedY     RangeSpec `yaml:"speed_y"`
	GravityY   float64   `yaml:"gravity_y"`
	Quantity   int       `yaml:"quantity"`
	MaxAlive   int       `yaml:"max_alive"`
	// Follow offsets are relative to the followed entity's collider size:
	// x = width/2 + FollowOffset.X, y = height/2 + FollowOffset.Y.
	FollowOffset OffsetSpec `yaml:"follow_offset"`
	// BurstOffset is added to the player position for one-shot emissions.
	BurstOffset OffsetSpec `yaml:"burst_offset"`
}

// EffectsSpec configures the player's particle emitters.
type EffectsSpec struct {
	Walking EmitterSpec `yaml:"walking"`
	Jump    EmitterSpec `yaml:"jump"`
	Land    EmitterSpec `yaml:"land"`
}

func LoadEffectsSpec() (*EffectsSpec, error) {
	spec, err := LoadSpec[EffectsSpec]("effects.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
