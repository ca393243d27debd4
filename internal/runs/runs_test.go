package runs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physlab/internal/recorder"
)

func someFrames(n int) []recorder.Frame {
	out := make([]recorder.Frame, n)
	for i := range out {
		out[i] = recorder.Frame{Time: float64(i), Height: float64(n - i)}
	}
	return out
}

func TestSaveAutoLabels(t *testing.T) {
	c := NewComparator()

	a, ok := c.Save("", "throw", map[string]float64{"speed": 20}, someFrames(3))
	require.True(t, ok)
	assert.Equal(t, "Run A", a.Label)

	b, ok := c.Save("", "throw", nil, someFrames(3))
	require.True(t, ok)
	assert.Equal(t, "Run B", b.Label)

	named, ok := c.Save("baseline", "throw", nil, someFrames(3))
	require.True(t, ok)
	assert.Equal(t, "baseline", named.Label)

	assert.Equal(t, 3, c.Len())
}

func TestSaveEmptyBufferIsNoop(t *testing.T) {
	c := NewComparator()
	run, ok := c.Save("", "throw", nil, nil)
	assert.False(t, ok)
	assert.Nil(t, run)
	assert.Equal(t, 0, c.Len())
}

func TestSaveDeepCopies(t *testing.T) {
	c := NewComparator()
	frames := someFrames(3)
	params := map[string]float64{"speed": 20}

	run, ok := c.Save("", "throw", params, frames)
	require.True(t, ok)

	// Mutating the caller's data must not touch the snapshot.
	frames[0].Height = -1
	params["speed"] = 999

	saved := c.List()[0]
	assert.Equal(t, 3.0, saved.Frames[0].Height)
	assert.Equal(t, 20.0, saved.Params["speed"])
	assert.NotEmpty(t, run.ID)
}

func TestRemove(t *testing.T) {
	c := NewComparator()
	a, _ := c.Save("", "throw", nil, someFrames(2))
	b, _ := c.Save("", "throw", nil, someFrames(2))

	require.True(t, c.Remove(a.ID))
	assert.False(t, c.Remove(a.ID))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, b.ID, c.List()[0].ID)
}

func TestClear(t *testing.T) {
	c := NewComparator()
	c.Save("", "throw", nil, someFrames(2))
	c.Save("", "throw", nil, someFrames(2))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.List())
}
