package typewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealsWholeText(t *testing.T) {
	const full = "Full Stack Developer | Web Developer"
	tw := New(full)
	assert.Equal(t, "", tw.Text())

	ticks := 0
	for tw.Tick() {
		ticks++
		require.Less(t, ticks, 1000)
	}
	assert.True(t, tw.Done())
	assert.Equal(t, full, tw.Text())
	assert.Equal(t, len(full)-1, ticks)
}

func TestStopsWhenDone(t *testing.T) {
	tw := New("ab")
	tw.Tick()
	tw.Tick()
	assert.False(t, tw.Tick())
	assert.Equal(t, "ab", tw.Text())
	assert.Equal(t, 2, tw.Shown())
}

func TestRuneSafe(t *testing.T) {
	tw := New("héllo →")
	tw.Tick()
	tw.Tick()
	assert.Equal(t, "hé", tw.Text())
}

func TestEmpty(t *testing.T) {
	tw := New("")
	assert.True(t, tw.Done())
	assert.False(t, tw.Tick())
}

func TestFrames(t *testing.T) {
	assert.Equal(t, []string{"", "G", "Go"}, Frames("Go"))
}
