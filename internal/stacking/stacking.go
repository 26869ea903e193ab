// Package stacking maps scroll progress onto the scale factors of the
// stacking project cards and their image parallax.
package stacking

// ScaleStep is how much smaller each card sits than the one stacked on it
const ScaleStep = 0.05

// Image parallax runs from zoomed in to natural size
const (
	ImageScaleStart = 1.2
	ImageScaleEnd   = 1.0
)

// Range is a closed numeric interval
type Range struct {
	From, To float64
}

// Clamp01 limits p to [0,1]
func Clamp01(p float64) float64 {
	return clamp(p, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Interpolate maps v linearly from in onto out, clamping to the ends of
// out instead of extrapolating. An empty input range yields out.From up
// to and including in.From, out.To past it.
func Interpolate(v float64, in, out Range) float64 {
	if in.From == in.To {
		if v <= in.From {
			return out.From
		}
		return out.To
	}
	t := clamp((v-in.From)/(in.To-in.From), 0, 1)
	switch t {
	case 0:
		return out.From
	case 1:
		return out.To
	}
	return out.From + (out.To-out.From)*t
}

// TargetScale is the scale card i of n settles at when progress reaches 1
func TargetScale(i, n int) float64 {
	return 1 - float64(n-i)*ScaleStep
}

// CardRange is the slice of global progress over which card i shrinks
func CardRange(i, n int) Range {
	return Range{From: float64(i) / float64(n), To: 1}
}

// CardScale returns the scale of card i of n at global progress p.
// Cards outside [0,n) are left at full size.
func CardScale(p float64, i, n int) float64 {
	if n <= 0 || i < 0 || i >= n {
		return 1
	}
	return Interpolate(Clamp01(p), CardRange(i, n), Range{From: 1, To: TargetScale(i, n)})
}

// CardScales returns the scale of every card at progress p
func CardScales(p float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	scales := make([]float64, n)
	for i := range scales {
		scales[i] = CardScale(p, i, n)
	}
	return scales
}

// ImageScale maps a card's own scroll progress onto its image zoom
func ImageScale(local float64) float64 {
	return Interpolate(Clamp01(local), Range{From: 0, To: 1}, Range{From: ImageScaleStart, To: ImageScaleEnd})
}

// LocalProgress is 0 while the card top sits at the viewport bottom and
// 1 once it reaches the viewport top. cardTop is relative to the viewport.
func LocalProgress(cardTop, viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return 1
	}
	return Clamp01((viewportHeight - cardTop) / viewportHeight)
}

// ScrollFraction normalizes a scroll offset within a container
func ScrollFraction(offset, contentHeight, viewportHeight float64) float64 {
	span := contentHeight - viewportHeight
	if span <= 0 {
		return 0
	}
	return Clamp01(offset / span)
}

// Parallax is the vertical drift of the gallery for a page scroll offset
func Parallax(scrollY float64) float64 {
	return Interpolate(scrollY, Range{From: 0, To: 1000}, Range{From: 0, To: -30})
}

// HeaderScrolled reports whether the header switches to its compact style
func HeaderScrolled(scrollY float64) bool {
	return scrollY > 50
}
