package kinematics

import "math"

// FreeFall drops a mass from rest at height h0 under gravity g.
type FreeFall struct {
	height  float64
	gravity float64
	mass    float64

	terminal float64 // sqrt(2 h0 / g)
}

func NewFreeFall(height, gravity, mass float64) (*FreeFall, error) {
	if height <= 0 {
		return nil, configErr("height", height, "positive")
	}
	if gravity <= 0 {
		return nil, configErr("gravity", gravity, "positive")
	}
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	return &FreeFall{
		height:   height,
		gravity:  gravity,
		mass:     mass,
		terminal: math.Sqrt(2 * height / gravity),
	}, nil
}

func (f *FreeFall) Kind() Kind            { return KindFreeFall }
func (f *FreeFall) TerminalTime() float64 { return f.terminal }
func (f *FreeFall) PeakTime() float64     { return NoPeak() }

func (f *FreeFall) Evaluate(t float64) State {
	if t >= f.terminal {
		// Grounded: boundary clamp, not an error.
		return State{
			Time:         t,
			Displacement: f.height,
			Total:        0,
		}
	}
	y := f.height - 0.5*f.gravity*t*t
	vy := -f.gravity * t
	ke := 0.5 * f.mass * vy * vy
	pe := f.mass * f.gravity * y
	return State{
		Time:         t,
		PosY:         y,
		Vel:          math.Abs(vy),
		VelY:         vy,
		Accel:        -f.gravity,
		Kinetic:      ke,
		Potential:    pe,
		Total:        ke + pe,
		Displacement: f.height - y,
		Height:       y,
	}
}

func (f *FreeFall) Params() map[string]float64 {
	return map[string]float64{
		"height":  f.height,
		"gravity": f.gravity,
		"mass":    f.mass,
	}
}

func (f *FreeFall) WithParam(key string, value float64) (Model, error) {
	p := f.Params()
	if _, ok := p[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	p[key] = value
	return NewFreeFall(p["height"], p["gravity"], p["mass"])
}

func (f *FreeFall) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "height", Label: "Initial height (m)", Min: 0.5, Max: 200, Step: 0.5},
		{Key: "gravity", Label: "Gravity (m/s²)", Min: 1, Max: 25, Step: 0.01},
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 100, Step: 0.1},
	}
}
