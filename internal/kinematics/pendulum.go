package kinematics

import "math"

// Pendulum is the small-angle pendulum, θ(t) = θ₀ cos(ωt) with ω = √(g/L).
// Potential uses the quadratic small-angle form ½ m g L θ², which keeps
// KE + PE exactly constant under the same approximation the motion uses.
type Pendulum struct {
	length  float64
	angle   float64
	gravity float64
	mass    float64

	omega  float64
	period float64
	energy float64
}

func NewPendulum(length, angle, gravity, mass float64) (*Pendulum, error) {
	if length <= 0 {
		return nil, configErr("length", length, "positive")
	}
	if angle == 0 {
		return nil, configErr("angle", angle, "non-zero")
	}
	if math.Abs(angle) >= math.Pi/2 {
		return nil, configErr("angle", angle, "within ±π/2 for the small-angle model")
	}
	if gravity <= 0 {
		return nil, configErr("gravity", gravity, "positive")
	}
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	omega := math.Sqrt(gravity / length)
	return &Pendulum{
		length:  length,
		angle:   angle,
		gravity: gravity,
		mass:    mass,
		omega:   omega,
		period:  2 * math.Pi / omega,
		energy:  0.5 * mass * gravity * length * angle * angle,
	}, nil
}

func (p *Pendulum) Kind() Kind            { return KindPendulum }
func (p *Pendulum) TerminalTime() float64 { return math.Inf(1) }
func (p *Pendulum) PeakTime() float64     { return NoPeak() }

func (p *Pendulum) Period() float64 { return p.period }

func (p *Pendulum) Evaluate(t float64) State {
	theta := p.angle * math.Cos(p.omega*t)
	thetaDot := -p.angle * p.omega * math.Sin(p.omega*t)
	v := p.length * thetaDot
	ke := 0.5 * p.mass * v * v
	pe := 0.5 * p.mass * p.gravity * p.length * theta * theta
	x := p.length * math.Sin(theta)
	y := -p.length * math.Cos(theta)
	return State{
		Time:         t,
		PosX:         x,
		PosY:         y,
		Vel:          math.Abs(v),
		VelX:         v * math.Cos(theta),
		VelY:         v * math.Sin(theta),
		Accel:        -p.gravity * math.Sin(theta),
		Kinetic:      ke,
		Potential:    pe,
		Total:        p.energy,
		Displacement: theta,
		Height:       p.length + y,
	}
}

func (p *Pendulum) Params() map[string]float64 {
	return map[string]float64{
		"length":  p.length,
		"angle":   p.angle,
		"gravity": p.gravity,
		"mass":    p.mass,
	}
}

func (p *Pendulum) WithParam(key string, value float64) (Model, error) {
	m := p.Params()
	if _, ok := m[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	m[key] = value
	return NewPendulum(m["length"], m["angle"], m["gravity"], m["mass"])
}

func (p *Pendulum) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "length", Label: "Length (m)", Min: 0.1, Max: 20, Step: 0.1},
		{Key: "angle", Label: "Release angle (rad)", Min: 0.02, Max: 1.5, Step: 0.01},
		{Key: "gravity", Label: "Gravity (m/s²)", Min: 1, Max: 25, Step: 0.01},
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 50, Step: 0.1},
	}
}
