package game

import "testing"

func TestNewParticle_Velocity(t *testing.T) {
	tests := []struct {
		angle        float64
		wantX, wantY float64
	}{
		{0, 10, 0},
		{90, 0, -10},
		{180, -10, 0},
		{270, 0, 10},
	}

	for _, tt := range tests {
		p := NewParticle(5, 6, tt.angle, 10, 3, 2)
		if !almostEqual(p.VX, tt.wantX, 1e-9) || !almostEqual(p.VY, tt.wantY, 1e-9) {
			t.Errorf("NewParticle(angle=%v, speed=10) velocity = (%v, %v), want (%v, %v)", tt.angle, p.VX, p.VY, tt.wantX, tt.wantY)
		}
	}
}

func TestNewParticle_InitialState(t *testing.T) {
	p := NewParticle(5, 6, 45, 10, 3, 2)

	if p.X != 5 || p.Y != 6 {
		t.Errorf("position = (%v, %v), want (5, 6)", p.X, p.Y)
	}
	if p.Life != 3 || p.Size != 2 {
		t.Errorf("life, size = %v, %v, want 3, 2", p.Life, p.Size)
	}
	if p.Lived != 0 || p.Dead {
		t.Errorf("lived, dead = %v, %v, want 0, false", p.Lived, p.Dead)
	}
}

func TestNewParticle_ZeroArgumentsAreKept(t *testing.T) {
	p := NewParticle(0, 0, 90, 0, 0.5, 0)

	if p.VX != 0 || p.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (0, 0) for zero speed", p.VX, p.VY)
	}
	if p.Size != 0 || p.Life != 0.5 {
		t.Errorf("size, life = %v, %v, want 0, 0.5", p.Size, p.Life)
	}
}
