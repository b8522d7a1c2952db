package pathanim

import (
	"math"
	"slices"
)

// Interpolation maps linear progress within a window to eased progress.
type Interpolation string

const (
	Linear    Interpolation = "linear"
	EaseIn    Interpolation = "ease-in"
	EaseOut   Interpolation = "ease-out"
	EaseInOut Interpolation = "ease-in-out"
)

// Valid reports whether i is one of the supported ease functions.
func (i Interpolation) Valid() bool {
	switch i {
	case Linear, EaseIn, EaseOut, EaseInOut:
		return true
	}
	return false
}

// Ease applies the easing function to p, clamped to [0,1]. Unknown
// interpolations behave as Linear.
func (i Interpolation) Ease(p float64) float64 {
	p = clamp01(p)
	switch i {
	case EaseIn:
		return p * p
	case EaseOut:
		return 1 - (1-p)*(1-p)
	case EaseInOut:
		if p < 0.5 {
			return 2 * p * p
		}
		q := -2*p + 2
		return 1 - q*q/2
	default:
		return p
	}
}

// Visibility controls what a shape does outside its window.
type Visibility string

const (
	// Pop hides the shape before its window starts and after it ends.
	Pop Visibility = "pop"
	// Static holds the shape at its first or last position.
	Static Visibility = "static"
)

// Valid reports whether v is a known visibility mode.
func (v Visibility) Valid() bool {
	return v == Pop || v == Static
}

// MinWindowSpan is the minimum separation between window start and end.
const MinWindowSpan = 0.01

// Window is an active span [Start, End] on the normalized timeline.
type Window struct {
	Start, End float64
}

// FullWindow is always active.
var FullWindow = Window{Start: 0, End: 1}

// NewWindow clamps start and end to [0,1], swaps them if inverted and
// widens the window to MinWindowSpan if it is too narrow.
func NewWindow(start, end float64) Window {
	if math.IsNaN(start) {
		start = 0
	}
	if math.IsNaN(end) {
		end = 1
	}
	start, end = clamp01(start), clamp01(end)
	if start > end {
		start, end = end, start
	}
	if end-start < MinWindowSpan {
		if start+MinWindowSpan > 1 {
			start, end = 1-MinWindowSpan, 1
		} else {
			end = start + MinWindowSpan
		}
	}
	return Window{Start: start, End: end}
}

// GlobalWindow converts the percent-based override parameters into a
// window. The override is active only when it differs from [0, 100].
func GlobalWindow(startPercent, endPercent float64) (Window, bool) {
	if startPercent == 0 && endPercent == 100 {
		return FullWindow, false
	}
	return NewWindow(startPercent/100, endPercent/100), true
}

// IsFull reports whether the window covers the whole timeline.
func (w Window) IsFull() bool {
	return w.Start <= 0 && w.End >= 1
}

// Contains reports whether tau lies inside the window, bounds included.
func (w Window) Contains(tau float64) bool {
	return tau >= w.Start && tau <= w.End
}

// Progress returns the linear progress of tau through the window.
func (w Window) Progress(tau float64) float64 {
	span := w.End - w.Start
	if span <= 0 {
		return 1
	}
	return clamp01((tau - w.Start) / span)
}

// FrameTime returns the normalized timeline position of frame f in a batch
// of count frames. A single-frame batch sits at 0.
func FrameTime(f, count int) float64 {
	return float64(f) / float64(max(count-1, 1))
}

// Phase locates a timeline position relative to a window.
type Phase int

const (
	Before Phase = iota
	Active
	After
)

// Sample is the state of one path at one timeline position.
type Sample struct {
	Position Point
	Visible  bool
	Phase    Phase
	// Progress is the eased progress through the window.
	Progress float64
}

// EffectiveWindow returns override when it is non-nil, otherwise the
// path's own window.
func (p *Path) EffectiveWindow(override *Window) Window {
	if override != nil {
		return *override
	}
	return p.Window
}

// SampleAt evaluates the path at normalized timeline position tau.
func (p *Path) SampleAt(tau float64, override *Window) Sample {
	w := p.EffectiveWindow(override)
	static := p.Visibility == Static
	switch {
	case tau < w.Start:
		return Sample{Position: p.Start(), Visible: static, Phase: Before}
	case tau > w.End:
		return Sample{Position: p.End(), Visible: static, Phase: After, Progress: 1}
	}
	eased := p.Interpolation.Ease(w.Progress(tau))
	return Sample{
		Position: PointAt(p.Points, eased),
		Visible:  true,
		Phase:    Active,
		Progress: eased,
	}
}

// WindowTrack restricts a track to the [Start, End] fraction of its own
// arc length and resamples the restriction to n points. The restriction
// keeps the interpolated window endpoints and every interior sample whose
// arc-length fraction lies strictly inside the window. A full window
// returns the track unchanged.
func WindowTrack(track []Point, w Window, n int) []Point {
	if len(track) == 0 {
		return nil
	}
	if w.IsFull() && len(track) == n {
		return slices.Clone(track)
	}
	cum := cumulativeLengths(track)
	total := cum[len(cum)-1]
	if total == 0 {
		return Resample(track[:1], n)
	}
	lo, hi := w.Start*total, w.End*total
	sub := make([]Point, 0, len(track))
	sub = append(sub, pointAtLength(track, cum, lo))
	for i, d := range cum {
		if d > lo && d < hi {
			sub = append(sub, track[i])
		}
	}
	sub = append(sub, pointAtLength(track, cum, hi))
	return Resample(sub, n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
