package kinematics

import "math"

// Spring is simple harmonic motion released from amplitude A at rest:
// x(t) = A cos(ωt) with ω = √(k/m). Unbounded; the session never completes
// it automatically.
type Spring struct {
	mass      float64
	stiffness float64
	amplitude float64

	omega  float64
	period float64
	energy float64 // ½ k A², constant for the whole run
}

func NewSpring(mass, stiffness, amplitude float64) (*Spring, error) {
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	if stiffness <= 0 {
		return nil, configErr("stiffness", stiffness, "positive")
	}
	if amplitude <= 0 {
		return nil, configErr("amplitude", amplitude, "positive")
	}
	omega := math.Sqrt(stiffness / mass)
	return &Spring{
		mass:      mass,
		stiffness: stiffness,
		amplitude: amplitude,
		omega:     omega,
		period:    2 * math.Pi / omega,
		energy:    0.5 * stiffness * amplitude * amplitude,
	}, nil
}

func (s *Spring) Kind() Kind            { return KindSpring }
func (s *Spring) TerminalTime() float64 { return math.Inf(1) }
func (s *Spring) PeakTime() float64     { return NoPeak() }

// Period is 2π/ω.
func (s *Spring) Period() float64 { return s.period }

func (s *Spring) Evaluate(t float64) State {
	x := s.amplitude * math.Cos(s.omega*t)
	v := -s.amplitude * s.omega * math.Sin(s.omega*t)
	a := -s.omega * s.omega * x
	ke := 0.5 * s.mass * v * v
	pe := 0.5 * s.stiffness * x * x
	return State{
		Time:         t,
		PosX:         x,
		Vel:          math.Abs(v),
		VelX:         v,
		Accel:        a,
		Kinetic:      ke,
		Potential:    pe,
		Total:        s.energy,
		Displacement: x,
	}
}

func (s *Spring) Params() map[string]float64 {
	return map[string]float64{
		"mass":      s.mass,
		"stiffness": s.stiffness,
		"amplitude": s.amplitude,
	}
}

func (s *Spring) WithParam(key string, value float64) (Model, error) {
	p := s.Params()
	if _, ok := p[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	p[key] = value
	return NewSpring(p["mass"], p["stiffness"], p["amplitude"])
}

func (s *Spring) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 50, Step: 0.1},
		{Key: "stiffness", Label: "Spring constant (N/m)", Min: 0.5, Max: 500, Step: 0.5},
		{Key: "amplitude", Label: "Amplitude (m)", Min: 0.05, Max: 10, Step: 0.05},
	}
}
