package kinematics

import "math"

// Kind identifies a concrete model family. Energy bookkeeping and UI
// dispatch switch on Kind, never on name substrings.
type Kind int

const (
	KindFreeFall Kind = iota
	KindThrow
	KindProjectile
	KindIncline
	KindPulley
	KindSpring
	KindPendulum
	KindCircular
)

var kindNames = map[Kind]string{
	KindFreeFall:   "freefall",
	KindThrow:      "throw",
	KindProjectile: "projectile",
	KindIncline:    "incline",
	KindPulley:     "pulley",
	KindSpring:     "spring",
	KindPendulum:   "pendulum",
	KindCircular:   "circular",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Bounded reports whether the family reaches an analytic terminal time.
func (k Kind) Bounded() bool {
	switch k {
	case KindSpring, KindPendulum, KindCircular:
		return false
	}
	return true
}

// State is the full observable tuple at one instant. Velocity components
// carry sign; Vel is the scalar speed along the motion's primary direction.
type State struct {
	Time         float64
	PosX, PosY   float64
	Vel          float64
	VelX, VelY   float64
	Accel        float64
	Kinetic      float64
	Potential    float64
	Total        float64
	Displacement float64
	Height       float64
}

// ParamSpec describes one adjustable parameter for UI sliders.
type ParamSpec struct {
	Key   string
	Label string
	Min   float64
	Max   float64
	Step  float64
}

// Model is one analytic kinematics problem. Evaluate is pure and total for
// t >= 0; all analytic constants are fixed at construction. Configuration is
// immutable: WithParam builds a whole new model so derived constants can
// never go stale.
type Model interface {
	Kind() Kind
	Evaluate(t float64) State

	// TerminalTime returns +Inf for unbounded families.
	TerminalTime() float64

	// PeakTime returns NaN when the motion has no peak crossing.
	PeakTime() float64

	Params() map[string]float64
	WithParam(key string, value float64) (Model, error)
	Specs() []ParamSpec
}

// NoPeak is the PeakTime value for motions without a peak crossing.
func NoPeak() float64 { return math.NaN() }
