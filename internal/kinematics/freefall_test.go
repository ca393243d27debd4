package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestFreeFallTerminalTime(t *testing.T) {
	tests := []struct {
		height  float64
		gravity float64
	}{
		{20, 9.81},
		{1, 9.81},
		{100, 1.62}, // lunar
		{45, 10},
	}
	for _, tt := range tests {
		f, err := NewFreeFall(tt.height, tt.gravity, 1)
		if err != nil {
			t.Fatalf("h=%f g=%f: %v", tt.height, tt.gravity, err)
		}
		want := math.Sqrt(2 * tt.height / tt.gravity)
		if math.Abs(f.TerminalTime()-want) > 1e-12 {
			t.Errorf("h=%f g=%f: terminal %f, want %f", tt.height, tt.gravity, f.TerminalTime(), want)
		}
	}
}

func TestFreeFallEnergyConstant(t *testing.T) {
	f, _ := NewFreeFall(50, 9.81, 3)
	initial := f.Evaluate(0).Total
	if want := 3 * 9.81 * 50; math.Abs(initial-want) > 1e-9 {
		t.Fatalf("initial energy %f, want %f", initial, want)
	}
	for tm := 0.0; tm < f.TerminalTime(); tm += 0.1 {
		st := f.Evaluate(tm)
		if math.Abs(st.Total-initial) > 1e-9*initial {
			t.Errorf("t=%f: energy %f drifted from %f", tm, st.Total, initial)
		}
	}
}

func TestFreeFallNeverBelowGround(t *testing.T) {
	f, _ := NewFreeFall(10, 9.81, 1)
	for tm := 0.0; tm < 10; tm += 0.05 {
		if st := f.Evaluate(tm); st.Height < 0 {
			t.Fatalf("t=%f: height %f below ground", tm, st.Height)
		}
	}
}

func TestFreeFallNoPeak(t *testing.T) {
	f, _ := NewFreeFall(10, 9.81, 1)
	if !math.IsNaN(f.PeakTime()) {
		t.Errorf("free fall has no peak, got %f", f.PeakTime())
	}
}

func TestFreeFallConfigErrors(t *testing.T) {
	cases := [][3]float64{
		{0, 9.81, 1},  // zero height: zero time-to-completion
		{-5, 9.81, 1}, // negative height
		{10, 0, 1},    // zero gravity
		{10, -1, 1},   // negative gravity
		{10, 9.81, 0}, // zero mass
	}
	for _, c := range cases {
		if _, err := NewFreeFall(c[0], c[1], c[2]); !errors.Is(err, ErrConfig) {
			t.Errorf("NewFreeFall(%v): expected ErrConfig, got %v", c, err)
		}
	}
}
