package kinematics

import "math"

// Projectile launches a mass at speed v0 and elevation angle from height h0.
// Horizontal velocity is constant; the vertical component follows the same
// quadratic as Throw.
type Projectile struct {
	speed   float64
	angle   float64
	height  float64
	gravity float64
	mass    float64

	vx0      float64
	vy0      float64
	terminal float64
	peakTime float64
	rangeX   float64
}

func NewProjectile(speed, angle, height, gravity, mass float64) (*Projectile, error) {
	if speed <= 0 {
		return nil, configErr("speed", speed, "positive")
	}
	if angle <= 0 || angle >= math.Pi/2 {
		return nil, configErr("angle", angle, "between 0 and π/2 radians")
	}
	if height < 0 {
		return nil, configErr("height", height, "non-negative")
	}
	if gravity <= 0 {
		return nil, configErr("gravity", gravity, "positive")
	}
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	p := &Projectile{speed: speed, angle: angle, height: height, gravity: gravity, mass: mass}
	p.vx0 = speed * math.Cos(angle)
	p.vy0 = speed * math.Sin(angle)
	p.terminal = (p.vy0 + math.Sqrt(p.vy0*p.vy0+2*gravity*height)) / gravity
	p.peakTime = p.vy0 / gravity
	p.rangeX = p.vx0 * p.terminal
	return p, nil
}

func (p *Projectile) Kind() Kind            { return KindProjectile }
func (p *Projectile) TerminalTime() float64 { return p.terminal }
func (p *Projectile) PeakTime() float64     { return p.peakTime }

// Range is the horizontal distance covered at touchdown.
func (p *Projectile) Range() float64 { return p.rangeX }

func (p *Projectile) Evaluate(t float64) State {
	if t >= p.terminal {
		return State{
			Time:         t,
			PosX:         p.rangeX,
			Displacement: p.rangeX,
			Total:        0,
		}
	}
	x := p.vx0 * t
	y := p.height + p.vy0*t - 0.5*p.gravity*t*t
	vy := p.vy0 - p.gravity*t
	speed := math.Hypot(p.vx0, vy)
	ke := 0.5 * p.mass * speed * speed
	pe := p.mass * p.gravity * y
	return State{
		Time:         t,
		PosX:         x,
		PosY:         y,
		Vel:          speed,
		VelX:         p.vx0,
		VelY:         vy,
		Accel:        -p.gravity,
		Kinetic:      ke,
		Potential:    pe,
		Total:        ke + pe,
		Displacement: x,
		Height:       y,
	}
}

func (p *Projectile) Params() map[string]float64 {
	return map[string]float64{
		"speed":   p.speed,
		"angle":   p.angle,
		"height":  p.height,
		"gravity": p.gravity,
		"mass":    p.mass,
	}
}

func (p *Projectile) WithParam(key string, value float64) (Model, error) {
	m := p.Params()
	if _, ok := m[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	m[key] = value
	return NewProjectile(m["speed"], m["angle"], m["height"], m["gravity"], m["mass"])
}

func (p *Projectile) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "speed", Label: "Launch speed (m/s)", Min: 1, Max: 100, Step: 0.5},
		{Key: "angle", Label: "Launch angle (rad)", Min: 0.05, Max: 1.5, Step: 0.01},
		{Key: "height", Label: "Initial height (m)", Min: 0, Max: 200, Step: 0.5},
		{Key: "gravity", Label: "Gravity (m/s²)", Min: 1, Max: 25, Step: 0.01},
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 100, Step: 0.1},
	}
}
