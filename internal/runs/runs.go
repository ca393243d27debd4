// Package runs keeps immutable snapshots of recorded runs for overlay
// comparison. Snapshots are deep copies; nothing here aliases the live
// recorder buffer.
package runs

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"physlab/internal/recorder"
)

// Run is one saved recording plus the configuration that produced it.
type Run struct {
	ID      string
	Label   string
	ModelID string
	Params  map[string]float64
	Frames  []recorder.Frame
	SavedAt time.Time
}

// Comparator is the in-memory saved-run store. Lifetimes are independent of
// the live session: runs survive resets and hot-swaps until removed.
type Comparator struct {
	runs []Run
	seq  int
}

func NewComparator() *Comparator {
	return &Comparator{runs: make([]Run, 0, 4)}
}

// Save snapshots the given frames under label, or an auto-generated
// sequential label ("Run A", "Run B", ...) when label is empty. Saving an
// empty buffer is a no-op.
func (c *Comparator) Save(label, modelID string, params map[string]float64, frames []recorder.Frame) (*Run, bool) {
	if len(frames) == 0 {
		return nil, false
	}
	if label == "" {
		label = c.nextLabel()
	}
	r := Run{
		ID:      uuid.NewString(),
		Label:   label,
		ModelID: modelID,
		Params:  make(map[string]float64, len(params)),
		Frames:  make([]recorder.Frame, len(frames)),
		SavedAt: time.Now(),
	}
	for k, v := range params {
		r.Params[k] = v
	}
	copy(r.Frames, frames)
	c.runs = append(c.runs, r)
	c.seq++
	return &r, true
}

func (c *Comparator) nextLabel() string {
	if c.seq < 26 {
		return fmt.Sprintf("Run %c", 'A'+c.seq)
	}
	return fmt.Sprintf("Run %d", c.seq+1)
}

// Remove deletes the run with the given id. Returns whether it existed.
func (c *Comparator) Remove(id string) bool {
	for i, r := range c.runs {
		if r.ID == id {
			c.runs = append(c.runs[:i], c.runs[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all saved runs. The live session is unaffected.
func (c *Comparator) Clear() {
	c.runs = c.runs[:0]
}

func (c *Comparator) Len() int { return len(c.runs) }

// List returns the saved runs, oldest first. Frame slices are shared with
// the stored snapshots, which are themselves never mutated after Save.
func (c *Comparator) List() []Run {
	out := make([]Run, len(c.runs))
	copy(out, c.runs)
	return out
}
