// Package viz is the terminal front end: a bubbletea program whose frame
// timer is the host tick source for the session lifecycle.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"physlab/internal/export"
	"physlab/internal/kinematics"
	"physlab/internal/recorder"
	"physlab/internal/runs"
	"physlab/internal/session"
)

const (
	canvasW = 62
	canvasH = 18
)

// tickMsg carries the session generation captured when the tick was
// scheduled. A tick scheduled before a stop/restart carries a stale
// generation and must not advance the clock.
type tickMsg struct{ gen uint64 }

var graphFields = []recorder.Field{
	recorder.FieldHeight,
	recorder.FieldDisplacement,
	recorder.FieldVelocity,
	recorder.FieldKinetic,
	recorder.FieldPotential,
	recorder.FieldTotal,
}

// events collects session callbacks across bubbletea model copies.
type events struct {
	peaked    bool
	peakAt    float64
	completed bool
}

// Model is the TUI state around one live session.
type Model struct {
	sess       *session.Session
	comp       *runs.Comparator
	ev         *events
	modelID    string
	fps        int
	canvas     *Canvas
	specs      []kinematics.ParamSpec
	selected   int
	fieldIdx   int
	scrubbing  bool
	scrubTime  float64
	overlay    bool
	notice     string
	exportPath string
}

func NewModel(modelID string, m kinematics.Model, fps int, exportPath string) Model {
	if fps <= 0 {
		fps = 60
	}
	ev := &events{}
	sess := session.New(m)
	sess.OnPeak(func(t float64) {
		ev.peaked = true
		ev.peakAt = t
	})
	sess.OnComplete(func() { ev.completed = true })
	return Model{
		sess:       sess,
		comp:       runs.NewComparator(),
		ev:         ev,
		modelID:    modelID,
		fps:        fps,
		canvas:     NewCanvas(canvasW, canvasH),
		specs:      m.Specs(),
		exportPath: exportPath,
	}
}

// Run starts the program and blocks until quit.
func Run(modelID string, m kinematics.Model, fps int, exportPath string) error {
	_, err := tea.NewProgram(NewModel(modelID, m, fps, exportPath)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	m.sess.Start()
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.sess.Generation()
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if m.sess.Valid(msg.gen) && !m.scrubbing {
			m.sess.Tick(1.0 / float64(m.fps))
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.scrubbing {
			m.scrubbing = false
		}
		if m.sess.Phase() == session.Playing {
			m.sess.Pause()
		} else {
			m.sess.Start()
		}
	case "r":
		m.scrubbing = false
		m.ev.peaked = false
		m.ev.completed = false
		m.notice = ""
		m.sess.Reset()
	case "R":
		if m.sess.Replay() {
			m.scrubbing = false
			m.ev.peaked = false
			m.ev.completed = false
			m.notice = ""
		}
	case "tab":
		if len(m.specs) > 0 {
			m.selected = (m.selected + 1) % len(m.specs)
		}
	case "up", "k":
		m.adjustParam(1)
	case "down", "j":
		m.adjustParam(-1)
	case "[":
		m.scrubBy(-0.25)
	case "]":
		m.scrubBy(0.25)
	case "esc":
		m.scrubbing = false
	case "s":
		if run, ok := m.comp.Save("", m.modelID, m.sess.Model().Params(), m.sess.Recorder().Frames()); ok {
			m.notice = fmt.Sprintf("saved %s (%d frames)", run.Label, len(run.Frames))
		} else {
			m.notice = "nothing to save yet"
		}
	case "o":
		m.overlay = !m.overlay
	case "g":
		m.fieldIdx = (m.fieldIdx + 1) % len(graphFields)
	case "e":
		frames := m.sess.Recorder().Frames()
		if len(frames) == 0 {
			m.notice = "nothing to export yet"
		} else if err := export.WriteCSVFile(m.exportPath, frames); err != nil {
			m.notice = "export failed: " + err.Error()
		} else {
			m.notice = "exported " + m.exportPath
		}
	}
	return m, nil
}

// adjustParam hot-swaps the selected parameter by one step, clamped to the
// parameter's range. While playing this restarts the run; paused sessions
// only refresh the displayed state.
func (m *Model) adjustParam(dir float64) {
	if len(m.specs) == 0 {
		return
	}
	spec := m.specs[m.selected]
	val := m.sess.Model().Params()[spec.Key] + dir*spec.Step
	if val < spec.Min {
		val = spec.Min
	}
	if val > spec.Max {
		val = spec.Max
	}
	if err := m.sess.SetParam(spec.Key, val); err != nil {
		m.notice = err.Error()
		return
	}
	if m.sess.Phase() == session.Playing {
		m.ev.peaked = false
		m.ev.completed = false
	}
	m.notice = fmt.Sprintf("%s = %.3g", spec.Key, val)
}

func (m *Model) scrubBy(delta float64) {
	rec := m.sess.Recorder()
	if rec.Len() == 0 {
		return
	}
	if !m.scrubbing {
		m.scrubbing = true
		m.scrubTime = m.sess.Clock()
		m.sess.Pause()
	}
	m.scrubTime += delta
	if m.scrubTime < 0 {
		m.scrubTime = 0
	}
	if max := rec.MaxTime(); m.scrubTime > max {
		m.scrubTime = max
	}
}

func (m Model) View() string {
	st := m.sess.Live()
	status := strings.ToUpper(m.sess.Phase().String())
	if m.scrubbing {
		if f, ok := m.sess.Recorder().Seek(m.scrubTime); ok {
			// Closed-form evaluation reproduces the scrubbed instant
			// exactly; no state is mutated.
			st = m.sess.Model().Evaluate(f.Time)
			status = fmt.Sprintf("SCRUB %.2fs", f.Time)
		}
	}

	drawScene(m.canvas, m.sess.Model(), st)

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(m.modelID)))
	b.WriteString("  " + phaseStyle.Render(status) + "\n")

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsView(st))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	b.WriteString(m.graphView())

	if m.notice != "" {
		b.WriteString("\n" + eventStyle.Render(m.notice))
	}
	b.WriteString(helpStyle.Render("\nspace play/pause · r reset · R replay · tab/↑↓ params · [ ] scrub · s save run · o overlay · g graph · e export · q quit"))
	return b.String()
}

func (m Model) statsView(st kinematics.State) string {
	var b strings.Builder
	row := func(label, format string, v float64) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, v)) + "\n")
	}
	row("time", "%.2f s", st.Time)
	row("displacement", "%.2f", st.Displacement)
	row("height", "%.2f m", st.Height)
	row("velocity", "%.2f m/s", st.Vel)
	row("acceleration", "%.2f m/s²", st.Accel)
	row("kinetic", "%.2f J", st.Kinetic)
	row("potential", "%.2f J", st.Potential)
	row("total energy", "%.2f J", st.Total)
	if m.ev.peaked {
		b.WriteString(eventStyle.Render(fmt.Sprintf("peak at %.2f s", m.ev.peakAt)) + "\n")
	}

	b.WriteString("\n")
	params := m.sess.Model().Params()
	for i, spec := range m.specs {
		line := fmt.Sprintf("%-12s %.3g", spec.Key, params[spec.Key])
		if i == m.selected {
			b.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(valueStyle.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (m Model) graphView() string {
	field := graphFields[m.fieldIdx]
	live := m.sess.Recorder().Series(field)

	series := make([][]float64, 0, 1+m.comp.Len())
	labels := make([]string, 0, cap(series))
	if len(live) >= 2 {
		series = append(series, live)
		labels = append(labels, "live")
	}
	if m.overlay {
		for _, r := range m.comp.List() {
			if s := recorder.SeriesOf(r.Frames, field); len(s) >= 2 {
				series = append(series, s)
				labels = append(labels, r.Label)
			}
		}
	}
	if len(series) == 0 {
		return graphStyle.Render(fmt.Sprintf("%s: collecting...", field))
	}

	caption := fmt.Sprintf("%s (%s)", field, strings.Join(labels, ", "))
	graph := asciigraph.PlotMany(series,
		asciigraph.Height(8),
		asciigraph.Width(90),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}
