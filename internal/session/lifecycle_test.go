package session_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"physlab/internal/kinematics"
	"physlab/internal/session"
)

func newThrow(speed float64) kinematics.Model {
	m, err := kinematics.NewThrow(speed, 0, 9.81, 1)
	Expect(err).NotTo(HaveOccurred())
	return m
}

func newSpring() kinematics.Model {
	m, err := kinematics.NewSpring(1, 10, 0.5)
	Expect(err).NotTo(HaveOccurred())
	return m
}

// drive ticks until the session leaves Playing or the guard trips.
func drive(s *session.Session, dt float64) {
	for i := 0; i < 100000 && s.Phase() == session.Playing; i++ {
		s.Tick(dt)
	}
}

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		s = session.New(newThrow(20))
	})

	Describe("initial state", func() {
		It("starts Idle at t=0 with the model's rest state", func() {
			Expect(s.Phase()).To(Equal(session.Idle))
			Expect(s.Clock()).To(BeZero())
			Expect(s.Live().Time).To(BeZero())
			Expect(s.Live().Height).To(BeZero())
			Expect(s.Live().VelY).To(BeNumerically("==", 20))
		})
	})

	Describe("transitions", func() {
		It("plays from Idle", func() {
			Expect(s.Start()).To(BeTrue())
			Expect(s.Phase()).To(Equal(session.Playing))
		})

		It("pauses only while Playing", func() {
			Expect(s.Pause()).To(BeFalse())
			s.Start()
			Expect(s.Pause()).To(BeTrue())
			Expect(s.Phase()).To(Equal(session.Paused))
			Expect(s.Pause()).To(BeFalse())
		})

		It("resumes from Paused", func() {
			s.Start()
			s.Pause()
			Expect(s.Start()).To(BeTrue())
			Expect(s.Phase()).To(Equal(session.Playing))
		})

		It("refuses Start while Playing", func() {
			s.Start()
			Expect(s.Start()).To(BeFalse())
		})

		It("refuses Replay unless Completed", func() {
			Expect(s.Replay()).To(BeFalse())
			s.Start()
			Expect(s.Replay()).To(BeFalse())
		})
	})

	Describe("ticking", func() {
		It("ignores ticks outside Playing", func() {
			Expect(s.Tick(0.01)).To(BeFalse())
			Expect(s.Clock()).To(BeZero())
		})

		It("advances the clock by dt", func() {
			s.Start()
			s.Tick(0.01)
			Expect(s.Clock()).To(BeNumerically("~", 0.01, 1e-12))
		})

		It("caps a giant delta at DtCap", func() {
			s.Start()
			s.Tick(2.0)
			Expect(s.Clock()).To(BeNumerically("==", session.DtCap))
		})

		It("rejects non-positive deltas", func() {
			s.Start()
			Expect(s.Tick(0)).To(BeFalse())
			Expect(s.Tick(-1)).To(BeFalse())
			Expect(s.Clock()).To(BeZero())
		})

		It("delivers non-decreasing clock values", func() {
			s.Start()
			prev := 0.0
			for i := 0; i < 50; i++ {
				s.Tick(0.016)
				Expect(s.Clock()).To(BeNumerically(">=", prev))
				prev = s.Clock()
			}
		})
	})

	Describe("completion", func() {
		It("clamps to the terminal time and completes exactly once", func() {
			count := 0
			s.OnComplete(func() { count++ })
			s.Start()
			drive(s, 0.02)

			Expect(s.Phase()).To(Equal(session.Completed))
			Expect(s.Clock()).To(BeNumerically("~", s.Model().TerminalTime(), 1e-12))
			Expect(count).To(Equal(1))

			// Further ticks are no-ops.
			Expect(s.Tick(0.02)).To(BeFalse())
			Expect(s.Clock()).To(BeNumerically("~", s.Model().TerminalTime(), 1e-12))
			Expect(count).To(Equal(1))
		})

		It("never completes an unbounded model", func() {
			s = session.New(newSpring())
			s.Start()
			for i := 0; i < 2000; i++ {
				s.Tick(0.02)
			}
			Expect(s.Phase()).To(Equal(session.Playing))
		})
	})

	Describe("peak crossing", func() {
		It("fires exactly once, at the sign flip", func() {
			var at []float64
			s.OnPeak(func(t float64) { at = append(at, t) })
			s.Start()
			drive(s, 0.02)

			Expect(at).To(HaveLen(1))
			Expect(at[0]).To(BeNumerically("~", 20.0/9.81, 0.03))
		})

		It("fires again after replay", func() {
			count := 0
			s.OnPeak(func(float64) { count++ })
			s.Start()
			drive(s, 0.02)
			Expect(count).To(Equal(1))

			s.Replay()
			drive(s, 0.02)
			Expect(count).To(Equal(2))
		})
	})

	Describe("reset", func() {
		It("returns to the exact initial configuration from any phase", func() {
			s.Start()
			for i := 0; i < 30; i++ {
				s.Tick(0.02)
			}
			s.Reset()

			Expect(s.Phase()).To(Equal(session.Idle))
			Expect(s.Clock()).To(BeZero())
			Expect(s.Recorder().Len()).To(BeZero())
			Expect(s.Live().Time).To(BeZero())
			Expect(s.Live().VelY).To(BeNumerically("==", 20))
		})
	})

	Describe("replay", func() {
		It("restarts a completed run immediately", func() {
			s.Start()
			drive(s, 0.02)
			Expect(s.Phase()).To(Equal(session.Completed))

			Expect(s.Replay()).To(BeTrue())
			Expect(s.Phase()).To(Equal(session.Playing))
			Expect(s.Clock()).To(BeZero())
			// Only the t=0 frame survives the replay clear.
			Expect(s.Recorder().Len()).To(Equal(1))
		})
	})

	Describe("parameter hot-swap", func() {
		It("restarts the run while Playing", func() {
			s.Start()
			for i := 0; i < 30; i++ {
				s.Tick(0.02)
			}
			before := s.Recorder().Len()
			Expect(before).To(BeNumerically(">", 1))

			Expect(s.SetParam("speed", 10)).To(Succeed())
			Expect(s.Phase()).To(Equal(session.Playing))
			Expect(s.Clock()).To(BeZero())
			Expect(s.Recorder().Len()).To(Equal(1))
			Expect(s.Model().Params()["speed"]).To(BeNumerically("==", 10))
		})

		It("only refreshes the displayed state while Paused", func() {
			s.Start()
			for i := 0; i < 30; i++ {
				s.Tick(0.02)
			}
			s.Pause()
			clock := s.Clock()
			frames := s.Recorder().Len()

			Expect(s.SetParam("speed", 10)).To(Succeed())
			Expect(s.Phase()).To(Equal(session.Paused))
			Expect(s.Clock()).To(BeNumerically("==", clock))
			Expect(s.Recorder().Len()).To(Equal(frames))
			Expect(s.Live().Time).To(BeNumerically("==", clock))
		})

		It("rejects a degenerate configuration and keeps the session intact", func() {
			s.Start()
			s.Tick(0.02)
			clock := s.Clock()

			err := s.SetParam("gravity", -1)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("gravity"))
			Expect(s.Clock()).To(BeNumerically("==", clock))
			Expect(s.Model().Params()["gravity"]).To(BeNumerically("==", 9.81))
		})
	})

	Describe("generation guard", func() {
		It("invalidates ticks scheduled before a restart", func() {
			s.Start()
			stale := s.Generation()
			Expect(s.Valid(stale)).To(BeTrue())

			s.SetParam("speed", 15) // restart while playing
			Expect(s.Valid(stale)).To(BeFalse())
			Expect(s.Valid(s.Generation())).To(BeTrue())
		})

		It("invalidates on pause and reset", func() {
			s.Start()
			gen := s.Generation()
			s.Pause()
			Expect(s.Valid(gen)).To(BeFalse())

			gen = s.Generation()
			s.Reset()
			Expect(s.Valid(gen)).To(BeFalse())
		})
	})

	Describe("live values", func() {
		It("mirrors the standardized display tuple", func() {
			s.Start()
			for i := 0; i < 10; i++ {
				s.Tick(0.02)
			}
			lv := s.LiveValues()
			st := s.Live()
			Expect(lv.Time).To(Equal(st.Time))
			Expect(lv.PrimaryDisplacement).To(Equal(st.Displacement))
			Expect(lv.Velocity).To(Equal(st.Vel))
			Expect(lv.SecondaryExtent).To(Equal(st.Height))
		})
	})

	Describe("energy over a recorded run", func() {
		It("shows zero drift across all recorded frames", func() {
			s.Start()
			drive(s, 0.02)
			frames := s.Recorder().Frames()
			Expect(len(frames)).To(BeNumerically(">", 10))

			initial := frames[0].Total
			for _, f := range frames[:len(frames)-1] { // final frame is the grounded clamp
				Expect(f.Total).To(BeNumerically("~", initial, 1e-9*math.Max(initial, 1)))
			}
		})
	})
})
