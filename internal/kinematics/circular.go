package kinematics

import "math"

// Circular is motion on a circle of radius r: uniform when alpha is zero,
// otherwise steadily accelerating rotation (constant torque), with phase
// φ(t) = ω₀t + ½αt². Terminal time is +Inf; completion only via explicit
// reset.
type Circular struct {
	radius float64
	omega0 float64
	alpha  float64
	mass   float64

	period float64 // NaN when alpha != 0 or omega0 == 0
}

func NewCircular(radius, omega0, alpha, mass float64) (*Circular, error) {
	if radius <= 0 {
		return nil, configErr("radius", radius, "positive")
	}
	if omega0 == 0 && alpha == 0 {
		return nil, configErr("omega", omega0, "non-zero when alpha is zero")
	}
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	c := &Circular{radius: radius, omega0: omega0, alpha: alpha, mass: mass}
	if alpha == 0 {
		c.period = 2 * math.Pi / math.Abs(omega0)
	} else {
		c.period = math.NaN()
	}
	return c, nil
}

func (c *Circular) Kind() Kind            { return KindCircular }
func (c *Circular) TerminalTime() float64 { return math.Inf(1) }
func (c *Circular) PeakTime() float64     { return NoPeak() }

// Period of one revolution; NaN for accelerating rotation.
func (c *Circular) Period() float64 { return c.period }

func (c *Circular) Evaluate(t float64) State {
	phase := c.omega0*t + 0.5*c.alpha*t*t
	omega := c.omega0 + c.alpha*t
	x := c.radius * math.Cos(phase)
	y := c.radius * math.Sin(phase)
	speed := c.radius * math.Abs(omega)
	centripetal := c.radius * omega * omega
	ke := 0.5 * c.mass * speed * speed
	return State{
		Time:         t,
		PosX:         x,
		PosY:         y,
		Vel:          speed,
		VelX:         -c.radius * omega * math.Sin(phase),
		VelY:         c.radius * omega * math.Cos(phase),
		Accel:        math.Hypot(centripetal, c.radius*c.alpha),
		Kinetic:      ke,
		Total:        ke,
		Displacement: phase,
		Height:       y + c.radius,
	}
}

func (c *Circular) Params() map[string]float64 {
	return map[string]float64{
		"radius": c.radius,
		"omega":  c.omega0,
		"alpha":  c.alpha,
		"mass":   c.mass,
	}
}

func (c *Circular) WithParam(key string, value float64) (Model, error) {
	p := c.Params()
	if _, ok := p[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	p[key] = value
	return NewCircular(p["radius"], p["omega"], p["alpha"], p["mass"])
}

func (c *Circular) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "radius", Label: "Radius (m)", Min: 0.1, Max: 50, Step: 0.1},
		{Key: "omega", Label: "Angular velocity (rad/s)", Min: -20, Max: 20, Step: 0.1},
		{Key: "alpha", Label: "Angular accel (rad/s²)", Min: -5, Max: 5, Step: 0.05},
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 50, Step: 0.1},
	}
}
