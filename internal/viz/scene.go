package viz

import (
	"math"

	"physlab/internal/kinematics"
)

// drawScene renders the model's current state onto the canvas. Each family
// picks its own world-to-canvas scaling from the model's analytic extents so
// the motion always fits the viewport.
func drawScene(c *Canvas, model kinematics.Model, st kinematics.State) {
	c.Clear()
	w := c.Width * 2
	h := c.Height * 4

	switch m := model.(type) {
	case *kinematics.FreeFall:
		drawVertical(c, st.Height, m.Params()["height"], w, h)
	case *kinematics.Throw:
		drawVertical(c, st.Height, m.PeakHeight(), w, h)
	case *kinematics.Projectile:
		top := m.Params()["height"] + math.Pow(m.Params()["speed"]*math.Sin(m.Params()["angle"]), 2)/(2*m.Params()["gravity"])
		drawTrajectory(c, st, m.Range(), top, w, h)
	case *kinematics.Incline:
		drawIncline(c, m, st, w, h)
	case *kinematics.Pulley:
		drawPulley(c, m, st, w, h)
	case *kinematics.Spring:
		drawSpring(c, m, st, w, h)
	case *kinematics.Pendulum:
		drawPendulum(c, m, st, w, h)
	case *kinematics.Circular:
		drawCircular(c, m, st, w, h)
	}
}

func drawVertical(c *Canvas, height, maxHeight float64, w, h int) {
	ground := h - 2
	c.Line(0, ground, w-1, ground)
	if maxHeight <= 0 {
		maxHeight = 1
	}
	y := ground - int(height/maxHeight*float64(ground-4))
	c.Dot(w/2, clamp(y, 2, ground-1))
}

func drawTrajectory(c *Canvas, st kinematics.State, rangeX, top float64, w, h int) {
	ground := h - 2
	c.Line(0, ground, w-1, ground)
	if rangeX <= 0 {
		rangeX = 1
	}
	if top <= 0 {
		top = 1
	}
	x := int(st.PosX / rangeX * float64(w-6))
	y := ground - int(st.Height/top*float64(ground-4))
	c.Dot(clamp(x+2, 2, w-3), clamp(y, 2, ground-1))
}

func drawIncline(c *Canvas, m *kinematics.Incline, st kinematics.State, w, h int) {
	ground := h - 2
	c.Line(0, ground, w-1, ground)
	// Plane from top-left down to the ground.
	angle := m.Params()["angle"]
	planeW := float64(w) * 0.8
	planeH := planeW * math.Tan(angle)
	if planeH > float64(ground-4) {
		planeH = float64(ground - 4)
		planeW = planeH / math.Tan(angle)
	}
	x0, y0 := 4, ground-int(planeH)
	x1, y1 := 4+int(planeW), ground
	c.Line(x0, y0, x1, y1)
	frac := st.Displacement / m.Params()["length"]
	c.Dot(x0+int(frac*float64(x1-x0)), y0+int(frac*float64(y1-y0))-2)
}

func drawPulley(c *Canvas, m *kinematics.Pulley, st kinematics.State, w, h int) {
	ground := h - 2
	top := 3
	c.Line(0, ground, w-1, ground)
	c.Line(w/2-6, top, w/2+6, top)
	h0 := m.Params()["height"]
	span := float64(ground - top - 4)
	yHeavy := ground - int(st.Height/h0*span)
	yLight := ground - int(st.Displacement/h0*span)
	c.Line(w/2-5, top, w/2-5, clamp(yHeavy, top+2, ground-1))
	c.Line(w/2+5, top, w/2+5, clamp(yLight, top+2, ground-1))
	c.Dot(w/2-5, clamp(yHeavy, top+2, ground-1))
	c.Dot(w/2+5, clamp(yLight, top+2, ground-1))
}

func drawSpring(c *Canvas, m *kinematics.Spring, st kinematics.State, w, h int) {
	mid := h / 2
	amp := m.Params()["amplitude"]
	x := w/2 + int(st.PosX/amp*float64(w/2-6))
	c.Line(0, mid-6, 0, mid+6)
	c.Line(0, mid, clamp(x, 1, w-3), mid)
	c.Dot(clamp(x, 1, w-3), mid)
}

func drawPendulum(c *Canvas, m *kinematics.Pendulum, st kinematics.State, w, h int) {
	pivotX, pivotY := w/2, 2
	scale := float64(h-8) / m.Params()["length"]
	x := pivotX + int(st.PosX*scale)
	y := pivotY - int(st.PosY*scale)
	c.Line(pivotX-4, pivotY, pivotX+4, pivotY)
	c.Line(pivotX, pivotY, clamp(x, 1, w-2), clamp(y, 1, h-2))
	c.Dot(clamp(x, 1, w-2), clamp(y, 1, h-2))
}

func drawCircular(c *Canvas, m *kinematics.Circular, st kinematics.State, w, h int) {
	cx, cy := w/2, h/2
	r := m.Params()["radius"]
	scale := float64(min(w, h))/2 - 4
	for a := 0.0; a < 2*math.Pi; a += 0.05 {
		c.Set(cx+int(scale*math.Cos(a)), cy-int(scale*math.Sin(a)))
	}
	x := cx + int(st.PosX/r*scale)
	y := cy - int(st.PosY/r*scale)
	c.Line(cx, cy, x, y)
	c.Dot(x, y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
