// Package recorder buffers per-tick observables for scrubbing, graphing,
// comparison and export. The buffer is bounded: past the capacity it halves
// the resolution of the older half while leaving the recent half untouched.
package recorder

import "sort"

const (
	// DefaultCapacity is the hard frame cap before downsampling kicks in.
	DefaultCapacity = 3000

	// DefaultMinDelta rejects frames closer together than one 60 Hz frame.
	DefaultMinDelta = 0.016
)

// Frame is one recorded observable tuple. Frames are value types; the
// recorder never hands out references into its live buffer.
type Frame struct {
	Time         float64
	PosX         float64
	PosY         float64
	Velocity     float64
	VelX         float64
	VelY         float64
	Accel        float64
	Kinetic      float64
	Potential    float64
	Total        float64
	Displacement float64
	Height       float64
}

// Field selects one observable column for graph extraction.
type Field int

const (
	FieldHeight Field = iota
	FieldDisplacement
	FieldVelocity
	FieldAccel
	FieldKinetic
	FieldPotential
	FieldTotal
	FieldPosX
	FieldPosY
)

var fieldNames = map[Field]string{
	FieldHeight:       "height",
	FieldDisplacement: "displacement",
	FieldVelocity:     "velocity",
	FieldAccel:        "acceleration",
	FieldKinetic:      "kinetic energy",
	FieldPotential:    "potential energy",
	FieldTotal:        "total energy",
	FieldPosX:         "x position",
	FieldPosY:         "y position",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

func (f Frame) value(field Field) float64 {
	switch field {
	case FieldHeight:
		return f.Height
	case FieldDisplacement:
		return f.Displacement
	case FieldVelocity:
		return f.Velocity
	case FieldAccel:
		return f.Accel
	case FieldKinetic:
		return f.Kinetic
	case FieldPotential:
		return f.Potential
	case FieldTotal:
		return f.Total
	case FieldPosX:
		return f.PosX
	case FieldPosY:
		return f.PosY
	}
	return 0
}

// Recorder is an append-only, capacity-bounded frame buffer. Times are
// non-decreasing by construction because the session clock never runs
// backwards within a run, so no sorting is ever needed.
type Recorder struct {
	frames   []Frame
	capacity int
	minDelta float64
	hasLast  bool
	lastTime float64
}

func New(capacity int, minDelta float64) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if minDelta < 0 {
		minDelta = DefaultMinDelta
	}
	return &Recorder{
		frames:   make([]Frame, 0, capacity+1),
		capacity: capacity,
		minDelta: minDelta,
	}
}

// Record appends a frame unless it lands within minDelta of the previous
// one. Returns whether the frame was kept.
func (r *Recorder) Record(f Frame) bool {
	if r.hasLast && f.Time-r.lastTime < r.minDelta {
		return false
	}
	r.frames = append(r.frames, f)
	r.lastTime = f.Time
	r.hasLast = true
	if len(r.frames) > r.capacity {
		r.downsample()
	}
	return true
}

// downsample keeps every 2nd frame of the older half and the whole recent
// half. Re-appliable; the newest frame is always in the untouched half.
func (r *Recorder) downsample() {
	half := len(r.frames) / 2
	out := make([]Frame, 0, (half+1)/2+len(r.frames)-half)
	for i := 0; i < half; i += 2 {
		out = append(out, r.frames[i])
	}
	out = append(out, r.frames[half:]...)
	r.frames = out
}

// Frames returns a copy of the buffer.
func (r *Recorder) Frames() []Frame {
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *Recorder) Len() int { return len(r.frames) }

// MaxTime is the newest recorded time, or 0 when empty.
func (r *Recorder) MaxTime() float64 {
	if len(r.frames) == 0 {
		return 0
	}
	return r.frames[len(r.frames)-1].Time
}

// Reset clears the buffer and the dedup cursor.
func (r *Recorder) Reset() {
	r.frames = r.frames[:0]
	r.hasLast = false
	r.lastTime = 0
}

// Seek returns the recorded frame closest in time to t, ties broken toward
// the earlier frame. Binary search; the buffer is time-ordered.
func (r *Recorder) Seek(t float64) (Frame, bool) {
	n := len(r.frames)
	if n == 0 {
		return Frame{}, false
	}
	i := sort.Search(n, func(k int) bool { return r.frames[k].Time >= t })
	if i == 0 {
		return r.frames[0], true
	}
	if i == n {
		return r.frames[n-1], true
	}
	before, after := r.frames[i-1], r.frames[i]
	if t-before.Time <= after.Time-t {
		return before, true
	}
	return after, true
}

// Series extracts one observable column, oldest first.
func (r *Recorder) Series(field Field) []float64 {
	out := make([]float64, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.value(field)
	}
	return out
}

// SeriesOf extracts one observable column from a frame snapshot, for
// consumers holding saved-run copies rather than a live recorder.
func SeriesOf(frames []Frame, field Field) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f.value(field)
	}
	return out
}

// Times extracts the time column.
func (r *Recorder) Times() []float64 {
	out := make([]float64, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Time
	}
	return out
}
