package kinematics

import "math"

// Pulley is the two-mass Atwood machine. The heavier mass descends from
// height h0 while the lighter one rises; both share the magnitude of
// acceleration (m₂−m₁)g/(m₁+m₂).
type Pulley struct {
	mass1   float64
	mass2   float64
	height  float64
	gravity float64

	heavy    float64
	light    float64
	accel    float64
	tension  float64
	terminal float64
}

func NewPulley(mass1, mass2, height, gravity float64) (*Pulley, error) {
	if mass1 <= 0 {
		return nil, configErr("mass1", mass1, "positive")
	}
	if mass2 <= 0 {
		return nil, configErr("mass2", mass2, "positive")
	}
	if mass1 == mass2 {
		return nil, configErr("mass2", mass2, "different from mass1")
	}
	if height <= 0 {
		return nil, configErr("height", height, "positive")
	}
	if gravity <= 0 {
		return nil, configErr("gravity", gravity, "positive")
	}
	p := &Pulley{mass1: mass1, mass2: mass2, height: height, gravity: gravity}
	p.heavy = math.Max(mass1, mass2)
	p.light = math.Min(mass1, mass2)
	total := mass1 + mass2
	p.accel = (p.heavy - p.light) * gravity / total
	p.tension = 2 * mass1 * mass2 * gravity / total
	p.terminal = math.Sqrt(2 * height / p.accel)
	return p, nil
}

func (p *Pulley) Kind() Kind            { return KindPulley }
func (p *Pulley) TerminalTime() float64 { return p.terminal }
func (p *Pulley) PeakTime() float64     { return NoPeak() }

// Acceleration is the shared acceleration magnitude of both masses.
func (p *Pulley) Acceleration() float64 { return p.accel }

// Tension is the rope tension, 2 m₁ m₂ g / (m₁+m₂).
func (p *Pulley) Tension() float64 { return p.tension }

func (p *Pulley) Evaluate(t float64) State {
	if t >= p.terminal {
		// Heavy mass grounded, light mass holds at h.
		pe := p.light * p.gravity * p.height
		return State{
			Time:         t,
			Displacement: p.height,
			Potential:    pe,
			Total:        pe,
		}
	}
	s := 0.5 * p.accel * t * t
	v := p.accel * t
	yHeavy := p.height - s
	yLight := s
	ke := 0.5 * (p.mass1 + p.mass2) * v * v
	pe := p.heavy*p.gravity*yHeavy + p.light*p.gravity*yLight
	return State{
		Time:         t,
		PosY:         yHeavy,
		Vel:          v,
		VelY:         -v,
		Accel:        p.accel,
		Kinetic:      ke,
		Potential:    pe,
		Total:        ke + pe,
		Displacement: s,
		Height:       yHeavy,
	}
}

func (p *Pulley) Params() map[string]float64 {
	return map[string]float64{
		"mass1":   p.mass1,
		"mass2":   p.mass2,
		"height":  p.height,
		"gravity": p.gravity,
	}
}

func (p *Pulley) WithParam(key string, value float64) (Model, error) {
	m := p.Params()
	if _, ok := m[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	m[key] = value
	return NewPulley(m["mass1"], m["mass2"], m["height"], m["gravity"])
}

func (p *Pulley) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "mass1", Label: "Mass 1 (kg)", Min: 0.1, Max: 100, Step: 0.1},
		{Key: "mass2", Label: "Mass 2 (kg)", Min: 0.1, Max: 100, Step: 0.1},
		{Key: "height", Label: "Drop height (m)", Min: 0.5, Max: 100, Step: 0.5},
		{Key: "gravity", Label: "Gravity (m/s²)", Min: 1, Max: 25, Step: 0.01},
	}
}
