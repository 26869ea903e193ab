// Package typewriter reveals a line of text one character at a time.
package typewriter

import "time"

// DefaultInterval is the delay between revealed characters
const DefaultInterval = 60 * time.Millisecond

// Typewriter tracks how much of Full is visible. A finished typewriter
// stays finished; start over by building a new one.
type Typewriter struct {
	full  []rune
	shown int
}

// New starts a typewriter with nothing revealed
func New(full string) Typewriter {
	return Typewriter{full: []rune(full)}
}

// Tick reveals one more character and reports whether any remain hidden
func (t *Typewriter) Tick() bool {
	if t.shown < len(t.full) {
		t.shown++
	}
	return !t.Done()
}

// Text is the revealed prefix
func (t Typewriter) Text() string {
	return string(t.full[:t.shown])
}

// Full is the complete line
func (t Typewriter) Full() string {
	return string(t.full)
}

// Shown is the number of revealed characters
func (t Typewriter) Shown() int {
	return t.shown
}

// Done reports whether the whole line is visible
func (t Typewriter) Done() bool {
	return t.shown >= len(t.full)
}

// Frames returns every intermediate text in reveal order, starting with
// the empty string. Hosts that cannot run a timer render these directly.
func Frames(full string) []string {
	t := New(full)
	frames := []string{t.Text()}
	for !t.Done() {
		t.Tick()
		frames = append(frames, t.Text())
	}
	return frames
}
