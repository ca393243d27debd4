// Package session drives one physics model through the shared play
// lifecycle: Idle → Playing ⇄ Paused, Playing → Completed, replay and reset.
// The session owns the simulation clock, the frame recorder and the live
// state; hosts supply ticks and user actions, nothing else.
package session

import (
	"math"

	"physlab/internal/kinematics"
	"physlab/internal/recorder"
)

// Phase is the lifecycle state. Exactly one phase is active at a time.
type Phase int

const (
	Idle Phase = iota
	Playing
	Paused
	Completed
)

var phaseNames = map[Phase]string{
	Idle:      "idle",
	Playing:   "playing",
	Paused:    "paused",
	Completed: "completed",
}

func (p Phase) String() string {
	if n, ok := phaseNames[p]; ok {
		return n
	}
	return "unknown"
}

// DtCap bounds a single tick delta so a backgrounded host resuming after a
// long stall cannot inject a giant step.
const DtCap = 0.05

// LiveValues is the standardized display tuple handed to render layers.
type LiveValues struct {
	Time                float64
	PrimaryDisplacement float64
	Velocity            float64
	SecondaryExtent     float64
}

// Session holds phase, clock and model in one mutable struct so a tick
// handler observing it through the pointer always sees the current
// configuration, never a copy captured at loop start.
type Session struct {
	phase Phase
	clock float64
	model kinematics.Model
	rec   *recorder.Recorder
	live  kinematics.State

	// gen invalidates ticks scheduled before the last stop/restart.
	// A host tags its tick callbacks with Generation(); stale tags
	// make the callback a no-op, so two loops can never double-advance
	// the clock.
	gen uint64

	prevVY   float64
	peakSeen bool
	onDone   func()
	onPeak   func(t float64)
}

func New(model kinematics.Model) *Session {
	s := &Session{
		model: model,
		rec:   recorder.New(recorder.DefaultCapacity, recorder.DefaultMinDelta),
	}
	s.rest()
	return s
}

// OnComplete registers the completion callback, fired exactly once per run.
func (s *Session) OnComplete(fn func()) { s.onDone = fn }

// OnPeak registers the peak-crossing callback, fired exactly once per run
// at the tick where vertical velocity flips from positive to non-positive.
func (s *Session) OnPeak(fn func(t float64)) { s.onPeak = fn }

func (s *Session) Phase() Phase                 { return s.phase }
func (s *Session) Clock() float64               { return s.clock }
func (s *Session) Model() kinematics.Model      { return s.model }
func (s *Session) Live() kinematics.State       { return s.live }
func (s *Session) Recorder() *recorder.Recorder { return s.rec }
func (s *Session) Generation() uint64           { return s.gen }

// Valid reports whether a tick tagged with gen is still current.
func (s *Session) Valid(gen uint64) bool { return gen == s.gen }

// LiveValues returns the standardized display tuple for the current state.
func (s *Session) LiveValues() LiveValues {
	return LiveValues{
		Time:                s.live.Time,
		PrimaryDisplacement: s.live.Displacement,
		Velocity:            s.live.Vel,
		SecondaryExtent:     s.live.Height,
	}
}

// Start transitions Idle or Paused to Playing. No-op from other phases.
func (s *Session) Start() bool {
	switch s.phase {
	case Idle:
		s.gen++
		s.phase = Playing
		s.rec.Record(frameOf(s.live))
		return true
	case Paused:
		s.gen++
		s.phase = Playing
		return true
	}
	return false
}

// Pause freezes the clock. Valid only while Playing.
func (s *Session) Pause() bool {
	if s.phase != Playing {
		return false
	}
	s.gen++
	s.phase = Paused
	return true
}

// Reset returns to Idle from any phase, clears clock and buffers and
// re-evaluates the model at t=0 so consumers immediately see the rest state.
func (s *Session) Reset() {
	s.gen++
	s.phase = Idle
	s.rest()
}

// Replay restarts a completed run from t=0 and immediately plays. No-op
// unless Completed.
func (s *Session) Replay() bool {
	if s.phase != Completed {
		return false
	}
	s.gen++
	s.rest()
	s.phase = Playing
	s.rec.Record(frameOf(s.live))
	return true
}

func (s *Session) rest() {
	s.clock = 0
	s.rec.Reset()
	s.peakSeen = false
	s.live = s.model.Evaluate(0)
	s.prevVY = s.live.VelY
}

// Tick advances the clock by min(dt, DtCap). No-op unless Playing. When the
// model's analytic terminal time is reached the clock clamps to it, one
// final evaluation is recorded and the session completes.
func (s *Session) Tick(dt float64) bool {
	if s.phase != Playing || dt <= 0 {
		return false
	}
	if dt > DtCap {
		dt = DtCap
	}
	t := s.clock + dt
	terminal := s.model.TerminalTime()
	done := !math.IsInf(terminal, 1) && t >= terminal
	if done {
		t = terminal
	}
	s.clock = t
	s.live = s.model.Evaluate(t)
	s.rec.Record(frameOf(s.live))

	if !s.peakSeen && s.prevVY > 0 && s.live.VelY <= 0 {
		s.peakSeen = true
		if s.onPeak != nil {
			s.onPeak(t)
		}
	}
	s.prevVY = s.live.VelY

	if done {
		s.phase = Completed
		if s.onDone != nil {
			s.onDone()
		}
	}
	return true
}

// SetParam hot-swaps one parameter by rebuilding the model configuration
// wholesale. While Playing the run restarts from t=0 with cleared buffers;
// while Paused or Idle only the displayed state is refreshed at the current
// clock. Construction errors leave the session untouched.
func (s *Session) SetParam(key string, value float64) error {
	next, err := s.model.WithParam(key, value)
	if err != nil {
		return err
	}
	s.swap(next)
	return nil
}

// Swap replaces the whole model, with the same resync semantics as SetParam.
func (s *Session) Swap(model kinematics.Model) {
	s.swap(model)
}

func (s *Session) swap(next kinematics.Model) {
	s.model = next
	if s.phase == Playing {
		// Restart, not mid-flight continuation: analytic constants are
		// configuration-derived, so the old clock is meaningless here.
		s.gen++
		s.rest()
		s.rec.Record(frameOf(s.live))
		return
	}
	s.live = next.Evaluate(s.clock)
	s.prevVY = s.live.VelY
}

func frameOf(st kinematics.State) recorder.Frame {
	return recorder.Frame{
		Time:         st.Time,
		PosX:         st.PosX,
		PosY:         st.PosY,
		Velocity:     st.Vel,
		VelX:         st.VelX,
		VelY:         st.VelY,
		Accel:        st.Accel,
		Kinetic:      st.Kinetic,
		Potential:    st.Potential,
		Total:        st.Total,
		Displacement: st.Displacement,
		Height:       st.Height,
	}
}
