package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestProjectileRange(t *testing.T) {
	// Level launch at 45°: range = v²/g.
	p, err := NewProjectile(20, math.Pi/4, 0, 9.81, 1)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if got, want := p.Range(), 400.0/9.81; math.Abs(got-want) > 1e-6 {
		t.Errorf("range %f, want %f", got, want)
	}
}

func TestProjectilePeak(t *testing.T) {
	p, _ := NewProjectile(30, math.Pi/3, 0, 9.81, 1)
	vy0 := 30 * math.Sin(math.Pi/3)
	if got, want := p.PeakTime(), vy0/9.81; math.Abs(got-want) > 1e-9 {
		t.Errorf("peak time %f, want %f", got, want)
	}
	at := p.Evaluate(p.PeakTime())
	if math.Abs(at.VelY) > 1e-9 {
		t.Errorf("vertical velocity at peak %f, want 0", at.VelY)
	}
	// Horizontal velocity is untouched by gravity.
	if want := 30 * math.Cos(math.Pi/3); math.Abs(at.VelX-want) > 1e-9 {
		t.Errorf("horizontal velocity %f, want %f", at.VelX, want)
	}
}

func TestProjectileTerminalClamp(t *testing.T) {
	p, _ := NewProjectile(25, 0.8, 3, 9.81, 1)
	end := p.Evaluate(p.TerminalTime() + 5)
	if end.Height != 0 {
		t.Errorf("below ground: %f", end.Height)
	}
	if end.PosX != p.Range() {
		t.Errorf("landing x %f, want range %f", end.PosX, p.Range())
	}
}

func TestProjectileEnergyConstant(t *testing.T) {
	p, _ := NewProjectile(25, 0.9, 4, 9.81, 2)
	initial := p.Evaluate(0).Total
	for tm := 0.0; tm < p.TerminalTime(); tm += 0.07 {
		st := p.Evaluate(tm)
		if math.Abs(st.Total-initial) > 1e-9*initial {
			t.Errorf("t=%f: energy %f drifted from %f", tm, st.Total, initial)
		}
	}
}

func TestProjectileConfigErrors(t *testing.T) {
	if _, err := NewProjectile(0, 0.5, 0, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero speed: %v", err)
	}
	if _, err := NewProjectile(10, 0, 0, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("flat angle: %v", err)
	}
	if _, err := NewProjectile(10, math.Pi/2, 0, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("vertical angle: %v", err)
	}
	if _, err := NewProjectile(10, 0.5, -1, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("negative height: %v", err)
	}
}
