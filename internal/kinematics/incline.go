package kinematics

import "math"

// Incline slides a mass from rest down a plane of given length and angle
// with kinetic friction coefficient mu. Effective acceleration along the
// plane is g(sinθ − μcosθ) and must come out positive or the mass never
// moves, which is rejected at construction.
type Incline struct {
	length   float64
	angle    float64
	friction float64
	gravity  float64
	mass     float64

	accel    float64
	terminal float64
	topY     float64
}

func NewIncline(length, angle, friction, gravity, mass float64) (*Incline, error) {
	if length <= 0 {
		return nil, configErr("length", length, "positive")
	}
	if angle <= 0 || angle >= math.Pi/2 {
		return nil, configErr("angle", angle, "between 0 and π/2 radians")
	}
	if friction < 0 {
		return nil, configErr("friction", friction, "non-negative")
	}
	if gravity <= 0 {
		return nil, configErr("gravity", gravity, "positive")
	}
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	a := gravity * (math.Sin(angle) - friction*math.Cos(angle))
	if a <= 0 {
		return nil, configErr("friction", friction, "small enough for the mass to slide")
	}
	return &Incline{
		length:   length,
		angle:    angle,
		friction: friction,
		gravity:  gravity,
		mass:     mass,
		accel:    a,
		terminal: math.Sqrt(2 * length / a),
		topY:     length * math.Sin(angle),
	}, nil
}

func (in *Incline) Kind() Kind            { return KindIncline }
func (in *Incline) TerminalTime() float64 { return in.terminal }
func (in *Incline) PeakTime() float64     { return NoPeak() }

// Acceleration is the constant acceleration along the plane.
func (in *Incline) Acceleration() float64 { return in.accel }

func (in *Incline) Evaluate(t float64) State {
	if t >= in.terminal {
		return State{
			Time:         t,
			PosX:         in.length * math.Cos(in.angle),
			Displacement: in.length,
			Total:        0,
		}
	}
	s := 0.5 * in.accel * t * t
	v := in.accel * t
	y := in.topY - s*math.Sin(in.angle)
	ke := 0.5 * in.mass * v * v
	// Potential is measured against the effective (friction-reduced)
	// acceleration, so KE + PE is constant along the slide.
	pe := in.mass * in.accel * (in.length - s)
	return State{
		Time:         t,
		PosX:         s * math.Cos(in.angle),
		PosY:         y,
		Vel:          v,
		VelX:         v * math.Cos(in.angle),
		VelY:         -v * math.Sin(in.angle),
		Accel:        in.accel,
		Kinetic:      ke,
		Potential:    pe,
		Total:        ke + pe,
		Displacement: s,
		Height:       y,
	}
}

func (in *Incline) Params() map[string]float64 {
	return map[string]float64{
		"length":   in.length,
		"angle":    in.angle,
		"friction": in.friction,
		"gravity":  in.gravity,
		"mass":     in.mass,
	}
}

func (in *Incline) WithParam(key string, value float64) (Model, error) {
	p := in.Params()
	if _, ok := p[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	p[key] = value
	return NewIncline(p["length"], p["angle"], p["friction"], p["gravity"], p["mass"])
}

func (in *Incline) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "length", Label: "Plane length (m)", Min: 0.5, Max: 100, Step: 0.5},
		{Key: "angle", Label: "Incline angle (rad)", Min: 0.05, Max: 1.5, Step: 0.01},
		{Key: "friction", Label: "Friction μ", Min: 0, Max: 1.5, Step: 0.01},
		{Key: "gravity", Label: "Gravity (m/s²)", Min: 1, Max: 25, Step: 0.01},
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 100, Step: 0.1},
	}
}
