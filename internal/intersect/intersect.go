// Package intersect computes visibility events for laid-out page sections,
// standing in for a browser's intersection observer where the host has none.
package intersect

import (
	"time"

	"folio.dev/internal/scrollspy"
)

// Span is a section's vertical extent in content coordinates
type Span struct {
	Top    float64
	Height float64
}

// Viewport is the visible window over the content
type Viewport struct {
	Offset float64
	Height float64
}

// Observer watches a fixed set of spans and reports state changes
type Observer struct {
	opts    scrollspy.Options
	anchors []string
	spans   map[string]Span
	state   map[string]bool
	primed  bool
	now     func() time.Time
}

// New observes anchors that appear in layout, in anchor order. Anchors
// without a span are skipped.
func New(anchors []string, layout map[string]Span, opts scrollspy.Options) *Observer {
	o := &Observer{
		opts:  opts,
		spans: make(map[string]Span, len(layout)),
		state: make(map[string]bool, len(layout)),
		now:   time.Now,
	}
	for _, a := range anchors {
		span, ok := layout[a]
		if !ok {
			continue
		}
		o.anchors = append(o.anchors, a)
		o.spans[a] = span
	}
	return o
}

// Present reports whether anchor has a span
func (o *Observer) Present(anchor string) bool {
	_, ok := o.spans[anchor]
	return ok
}

// Ratio is the fraction of span inside the margin-trimmed viewport
func (o *Observer) Ratio(span Span, vp Viewport) float64 {
	if span.Height <= 0 {
		return 0
	}
	top := vp.Offset + vp.Height*o.opts.RootMarginTop
	bottom := vp.Offset + vp.Height*(1-o.opts.RootMarginBottom)
	overlap := min(bottom, span.Top+span.Height) - max(top, span.Top)
	if overlap <= 0 {
		return 0
	}
	return overlap / span.Height
}

func (o *Observer) intersecting(ratio float64) bool {
	return ratio > 0 && ratio >= o.opts.Threshold
}

// Update recomputes visibility for vp. The first call reports every
// observed anchor; later calls report only anchors whose state flipped.
// Events come out in anchor order.
func (o *Observer) Update(vp Viewport) []scrollspy.Event {
	var events []scrollspy.Event
	at := o.now()
	for _, a := range o.anchors {
		ratio := o.Ratio(o.spans[a], vp)
		in := o.intersecting(ratio)
		if o.primed && o.state[a] == in {
			continue
		}
		o.state[a] = in
		events = append(events, scrollspy.Event{
			Anchor:       a,
			Intersecting: in,
			Ratio:        ratio,
			At:           at,
		})
	}
	o.primed = true
	return events
}
