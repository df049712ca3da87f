package config

import (
	"errors"
	"testing"
)

func TestProfile_Basic(t *testing.T) {
	s, err := Profile(Basic)
	if err != nil {
		t.Fatalf("Profile(%q) error = %v", Basic, err)
	}

	want := Settings{
		EmissionRate: 4,
		MinLife:      5,
		LifeRange:    1,
		MinAngle:     0,
		AngleRange:   360,
		MinSpeed:     10,
		SpeedRange:   15,
		MinSize:      30,
		SizeRange:    100,
		Color:        RGB{R: 151, G: 242, B: 201},
	}
	if s != want {
		t.Errorf("Profile(%q) = %+v, want %+v", Basic, s, want)
	}
	if got := s.EmissionDelay(); got != 250 {
		t.Errorf("EmissionDelay() = %v, want 250", got)
	}
}

func TestProfile_Unknown(t *testing.T) {
	_, err := Profile("sparkle")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Profile(%q) error = %v, want ErrUnknownProfile", "sparkle", err)
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"151,242,201", RGB{151, 242, 201}, false},
		{" 0, 0 ,255 ", RGB{0, 0, 255}, false},
		{"127,239", RGB{}, true},
		{"256,0,0", RGB{}, true},
		{"a,b,c", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGB(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGB(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	valid := Settings{EmissionRate: 4, MinLife: 5, MinSize: 30}

	tests := []struct {
		name   string
		mutate func(s *Settings)
		ok     bool
	}{
		{"valid", func(s *Settings) {}, true},
		{"zero ranges", func(s *Settings) { s.LifeRange, s.AngleRange = 0, 0 }, true},
		{"zero emission rate", func(s *Settings) { s.EmissionRate = 0 }, false},
		{"negative emission rate", func(s *Settings) { s.EmissionRate = -1 }, false},
		{"zero min life", func(s *Settings) { s.MinLife = 0 }, false},
		{"negative min size", func(s *Settings) { s.MinSize = -1 }, false},
		{"negative life range", func(s *Settings) { s.LifeRange = -0.5 }, false},
		{"negative angle range", func(s *Settings) { s.AngleRange = -1 }, false},
		{"negative speed range", func(s *Settings) { s.SpeedRange = -1 }, false},
		{"negative size range", func(s *Settings) { s.SizeRange = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate() error = %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestParseProfiles_RejectsInvalid(t *testing.T) {
	data := []byte(`
broken:
  emission_rate: 4
  min_life: 5
  life_range: -1
  color: "1,2,3"
`)
	if _, err := parseProfiles(data); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("parseProfiles() error = %v, want ErrInvalidSettings", err)
	}
}

func TestParseProfiles_BadColor(t *testing.T) {
	data := []byte(`
broken:
  emission_rate: 4
  min_life: 5
  color: "1,2"
`)
	if _, err := parseProfiles(data); err == nil {
		t.Error("parseProfiles() error = nil, want color error")
	}
}
