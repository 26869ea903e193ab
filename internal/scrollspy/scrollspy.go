// Package scrollspy decides which page section is highlighted in the
// navigation, driven by visibility events from the host viewport.
package scrollspy

import "time"

// Options is the observer configuration handed to the host. Margins are
// fractions of the viewport height trimmed from the top and bottom.
type Options struct {
	Threshold        float64 `mapstructure:"threshold"`
	RootMarginTop    float64 `mapstructure:"margin_top"`
	RootMarginBottom float64 `mapstructure:"margin_bottom"`
}

// DefaultOptions matches the header's observer: 20% visible inside a
// viewport trimmed by 20% at the top and 35% at the bottom.
func DefaultOptions() Options {
	return Options{
		Threshold:        0.2,
		RootMarginTop:    0.2,
		RootMarginBottom: 0.35,
	}
}

// Event reports a change in an anchor's visibility
type Event struct {
	Anchor       string    `json:"anchor"`
	Intersecting bool      `json:"isIntersecting"`
	Ratio        float64   `json:"intersectionRatio"`
	At           time.Time `json:"timestamp"`
}

// State is the tracker output
type State struct {
	Active string `json:"active"`
}

// Tracker holds the fixed anchor set. It carries no mutable state; the
// active section lives in State and is threaded through Reduce.
type Tracker struct {
	anchors  []string
	observed map[string]bool
}

// New builds a tracker over anchors in page order. Anchors for which
// present returns false are not observed and can never become active.
// A nil present observes every anchor.
func New(anchors []string, present func(anchor string) bool) *Tracker {
	t := &Tracker{
		anchors:  append([]string(nil), anchors...),
		observed: make(map[string]bool, len(anchors)),
	}
	for _, a := range anchors {
		if present == nil || present(a) {
			t.observed[a] = true
		}
	}
	return t
}

// Anchors returns the configured anchors in order
func (t *Tracker) Anchors() []string {
	return append([]string(nil), t.anchors...)
}

// Observed reports whether anchor is being watched
func (t *Tracker) Observed(anchor string) bool {
	return t.observed[anchor]
}

// Initial returns the state before any event: the first configured anchor
func (t *Tracker) Initial() State {
	if len(t.anchors) == 0 {
		return State{}
	}
	return State{Active: t.anchors[0]}
}

// Reduce applies one event. The most recent intersecting event wins,
// regardless of page position; leaving events never change the state.
func (t *Tracker) Reduce(s State, e Event) State {
	if !e.Intersecting || !t.observed[e.Anchor] {
		return s
	}
	return State{Active: e.Anchor}
}

// Replay folds events into s in delivery order
func (t *Tracker) Replay(s State, events ...Event) State {
	for _, e := range events {
		s = t.Reduce(s, e)
	}
	return s
}

// Select handles an explicit navigation click, which highlights the
// target immediately without waiting for the scroll to land.
func (t *Tracker) Select(s State, anchor string) State {
	if !t.observed[anchor] {
		return s
	}
	return State{Active: anchor}
}
