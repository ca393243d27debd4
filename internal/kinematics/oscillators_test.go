package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestSpringPeriodAndEnergy(t *testing.T) {
	s, err := NewSpring(2, 8, 0.5)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if got, want := s.Period(), 2*math.Pi/2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("period %f, want %f", got, want)
	}
	want := 0.5 * 8 * 0.25
	for tm := 0.0; tm < 3*s.Period(); tm += 0.07 {
		st := s.Evaluate(tm)
		if math.Abs(st.Total-want) > 1e-12 {
			t.Errorf("t=%f: total energy %f, want %f", tm, st.Total, want)
		}
		if sum := st.Kinetic + st.Potential; math.Abs(sum-want) > 1e-9 {
			t.Errorf("t=%f: KE+PE %f, want %f", tm, sum, want)
		}
	}
}

func TestSpringExactlyPeriodic(t *testing.T) {
	s, _ := NewSpring(1, 10, 1)
	for _, tm := range []float64{0, 0.3, 1.1, 2.7} {
		a := s.Evaluate(tm)
		b := s.Evaluate(tm + s.Period())
		if math.Abs(a.PosX-b.PosX) > 1e-9 {
			t.Errorf("t=%f: position not periodic: %f vs %f", tm, a.PosX, b.PosX)
		}
		if math.Abs(a.VelX-b.VelX) > 1e-9 {
			t.Errorf("t=%f: velocity not periodic: %f vs %f", tm, a.VelX, b.VelX)
		}
	}
}

func TestSpringUnbounded(t *testing.T) {
	s, _ := NewSpring(1, 10, 1)
	if !math.IsInf(s.TerminalTime(), 1) {
		t.Errorf("spring terminal time %f, want +Inf", s.TerminalTime())
	}
}

func TestPendulumSmallAngle(t *testing.T) {
	p, err := NewPendulum(1, 0.3, 9.81, 1)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if got, want := p.Period(), 2*math.Pi*math.Sqrt(1/9.81); math.Abs(got-want) > 1e-12 {
		t.Errorf("period %f, want %f", got, want)
	}

	// Release point: full displacement, zero speed.
	start := p.Evaluate(0)
	if math.Abs(start.Displacement-0.3) > 1e-12 {
		t.Errorf("release angle %f, want 0.3", start.Displacement)
	}
	if start.Vel != 0 {
		t.Errorf("release speed %f, want 0", start.Vel)
	}

	// Quarter period: passes the lowest point at max speed.
	at := p.Evaluate(p.Period() / 4)
	if math.Abs(at.Displacement) > 1e-9 {
		t.Errorf("angle at quarter period %f, want 0", at.Displacement)
	}
}

func TestPendulumEnergyConstant(t *testing.T) {
	p, _ := NewPendulum(2, 0.25, 9.81, 1.5)
	want := p.Evaluate(0).Total
	for tm := 0.0; tm < 2*p.Period(); tm += 0.11 {
		st := p.Evaluate(tm)
		if sum := st.Kinetic + st.Potential; math.Abs(sum-want) > 1e-9 {
			t.Errorf("t=%f: KE+PE %f, want %f", tm, sum, want)
		}
	}
}

func TestCircularUniform(t *testing.T) {
	c, err := NewCircular(2, 1.5, 0, 1)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if got, want := c.Period(), 2*math.Pi/1.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("period %f, want %f", got, want)
	}

	// Phase grows monotonically; speed and radius are fixed.
	prev := -1.0
	for tm := 0.0; tm < 10; tm += 0.2 {
		st := c.Evaluate(tm)
		if st.Displacement <= prev {
			t.Fatalf("t=%f: phase not increasing: %f after %f", tm, st.Displacement, prev)
		}
		prev = st.Displacement
		if r := math.Hypot(st.PosX, st.PosY); math.Abs(r-2) > 1e-9 {
			t.Errorf("t=%f: radius %f, want 2", tm, r)
		}
		if math.Abs(st.Vel-3) > 1e-9 {
			t.Errorf("t=%f: speed %f, want 3", tm, st.Vel)
		}
	}
}

func TestCircularConstantTorque(t *testing.T) {
	// Steady angular acceleration: phase = ½αt².
	c, err := NewCircular(1, 0, 2, 1)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	st := c.Evaluate(3)
	if want := 0.5 * 2 * 9.0; math.Abs(st.Displacement-want) > 1e-9 {
		t.Errorf("phase %f, want %f", st.Displacement, want)
	}
	if !math.IsNaN(c.Period()) {
		t.Errorf("accelerating rotation has no fixed period, got %f", c.Period())
	}
}

func TestOscillatorConfigErrors(t *testing.T) {
	if _, err := NewSpring(0, 10, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero mass spring: %v", err)
	}
	if _, err := NewSpring(1, 0, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero stiffness: %v", err)
	}
	if _, err := NewPendulum(0, 0.3, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero length: %v", err)
	}
	if _, err := NewPendulum(1, 0, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero angle: %v", err)
	}
	if _, err := NewPendulum(1, 2.0, 9.81, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("angle outside small-angle range: %v", err)
	}
	if _, err := NewCircular(0, 1, 0, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("zero radius: %v", err)
	}
	if _, err := NewCircular(1, 0, 0, 1); !errors.Is(err, ErrConfig) {
		t.Errorf("motionless rotation: %v", err)
	}
}
