package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Basic is the name of the default emitter profile.
const Basic = "basic"

var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrUnknownProfile  = errors.New("unknown profile")
)

//go:embed profiles.yaml
var profilesYAML []byte

// RGB is an opaque colour written as an "r,g,b" triplet.
type RGB struct {
	R, G, B uint8
}

// ParseRGB parses a "r,g,b" triplet with each channel in 0..255.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("color %q: want 3 channels, got %d", s, len(parts))
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: channel %d: %w", s, i, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Settings tunes an emitter. Every *Range is added to its Min* counterpart
// to give a uniform draw in [min, min+range).
type Settings struct {
	EmissionRate float64 `yaml:"emission_rate"` // particles per second
	MinLife      float64 `yaml:"min_life"`      // seconds
	LifeRange    float64 `yaml:"life_range"`
	MinAngle     float64 `yaml:"min_angle"` // degrees
	AngleRange   float64 `yaml:"angle_range"`
	MinSpeed     float64 `yaml:"min_speed"` // pixels per second
	SpeedRange   float64 `yaml:"speed_range"`
	MinSize      float64 `yaml:"min_size"` // pixel radius
	SizeRange    float64 `yaml:"size_range"`
	Color        RGB     `yaml:"color"`
}

// EmissionDelay returns the milliseconds between two particle emissions.
func (s Settings) EmissionDelay() float64 {
	return 1000 / s.EmissionRate
}

// Validate rejects settings that would produce malformed visuals.
func (s Settings) Validate() error {
	if !(s.EmissionRate > 0) {
		return fmt.Errorf("%w: emission_rate must be positive, got %v", ErrInvalidSettings, s.EmissionRate)
	}
	if !(s.MinLife > 0) {
		return fmt.Errorf("%w: min_life must be positive, got %v", ErrInvalidSettings, s.MinLife)
	}
	if s.MinSize < 0 {
		return fmt.Errorf("%w: min_size must not be negative, got %v", ErrInvalidSettings, s.MinSize)
	}
	ranges := []struct {
		name string
		v    float64
	}{
		{"life_range", s.LifeRange},
		{"angle_range", s.AngleRange},
		{"speed_range", s.SpeedRange},
		{"size_range", s.SizeRange},
	}
	for _, r := range ranges {
		if r.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidSettings, r.name, r.v)
		}
	}
	return nil
}

// LoadProfiles parses the embedded profile table.
func LoadProfiles() (map[string]Settings, error) {
	return parseProfiles(profilesYAML)
}

func parseProfiles(data []byte) (map[string]Settings, error) {
	var profiles map[string]Settings
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	for name, s := range profiles {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return profiles, nil
}

// Profile returns the named, validated profile.
func Profile(name string) (Settings, error) {
	profiles, err := LoadProfiles()
	if err != nil {
		return Settings{}, err
	}
	s, ok := profiles[name]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return s, nil
}
