package kinematics

import "math"

// Throw launches a mass straight up at v0 from height h0. Terminal time is
// the positive root of h0 + v0 t - g t²/2 = 0.
type Throw struct {
	speed   float64
	height  float64
	gravity float64
	mass    float64

	terminal   float64
	peakTime   float64
	peakHeight float64
}

func NewThrow(speed, height, gravity, mass float64) (*Throw, error) {
	if speed < 0 {
		return nil, configErr("speed", speed, "non-negative")
	}
	if height < 0 {
		return nil, configErr("height", height, "non-negative")
	}
	if speed == 0 && height == 0 {
		return nil, configErr("speed", speed, "positive when height is zero")
	}
	if gravity <= 0 {
		return nil, configErr("gravity", gravity, "positive")
	}
	if mass <= 0 {
		return nil, configErr("mass", mass, "positive")
	}
	t := &Throw{speed: speed, height: height, gravity: gravity, mass: mass}
	t.terminal = (speed + math.Sqrt(speed*speed+2*gravity*height)) / gravity
	if speed > 0 {
		t.peakTime = speed / gravity
		t.peakHeight = height + speed*speed/(2*gravity)
	} else {
		t.peakTime = NoPeak()
		t.peakHeight = height
	}
	return t, nil
}

func (th *Throw) Kind() Kind            { return KindThrow }
func (th *Throw) TerminalTime() float64 { return th.terminal }
func (th *Throw) PeakTime() float64     { return th.peakTime }

// PeakHeight is the apex of the trajectory, h0 + v0²/2g.
func (th *Throw) PeakHeight() float64 { return th.peakHeight }

func (th *Throw) Evaluate(t float64) State {
	if t >= th.terminal {
		return State{
			Time:         t,
			Displacement: th.height,
			Total:        0,
		}
	}
	y := th.height + th.speed*t - 0.5*th.gravity*t*t
	vy := th.speed - th.gravity*t
	ke := 0.5 * th.mass * vy * vy
	pe := th.mass * th.gravity * y
	return State{
		Time:         t,
		PosY:         y,
		Vel:          math.Abs(vy),
		VelY:         vy,
		Accel:        -th.gravity,
		Kinetic:      ke,
		Potential:    pe,
		Total:        ke + pe,
		Displacement: y - th.height,
		Height:       y,
	}
}

func (th *Throw) Params() map[string]float64 {
	return map[string]float64{
		"speed":   th.speed,
		"height":  th.height,
		"gravity": th.gravity,
		"mass":    th.mass,
	}
}

func (th *Throw) WithParam(key string, value float64) (Model, error) {
	p := th.Params()
	if _, ok := p[key]; !ok {
		return nil, configErr(key, value, "a known parameter")
	}
	p[key] = value
	return NewThrow(p["speed"], p["height"], p["gravity"], p["mass"])
}

func (th *Throw) Specs() []ParamSpec {
	return []ParamSpec{
		{Key: "speed", Label: "Launch speed (m/s)", Min: 0, Max: 100, Step: 0.5},
		{Key: "height", Label: "Initial height (m)", Min: 0, Max: 200, Step: 0.5},
		{Key: "gravity", Label: "Gravity (m/s²)", Min: 1, Max: 25, Step: 0.01},
		{Key: "mass", Label: "Mass (kg)", Min: 0.1, Max: 100, Step: 0.1},
	}
}
