package stroke

import "sync"

// Recorder accumulates pointer input into strokes. It is safe to read from
// the render thread while input callbacks write to it.
type Recorder struct {
	mu      sync.RWMutex
	strokes []Stroke
	current *Stroke

	// MaxPoints caps the points of a sample, counting the stroke in
	// progress. Zero means no limit. Once reached, the current stroke is
	// ended and input is ignored until Clear.
	MaxPoints int
	full      bool
}

// NewRecorder returns a recorder with the given point budget.
func NewRecorder(maxPoints int) *Recorder {
	return &Recorder{MaxPoints: maxPoints}
}

// Begin starts a new stroke at p. A stroke still in progress is ended first.
func (r *Recorder) Begin(p Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endLocked()
	if r.full {
		return false
	}
	r.current = &Stroke{}
	return r.addLocked(p)
}

// Add appends p to the stroke in progress. It reports false when there is
// no stroke in progress or the budget is exhausted.
func (r *Recorder) Add(p Point) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil || r.full {
		return false
	}
	return r.addLocked(p)
}

func (r *Recorder) addLocked(p Point) bool {
	r.current.Points = append(r.current.Points, p)
	if r.MaxPoints > 0 && r.countLocked() >= r.MaxPoints {
		r.full = true
		r.endLocked()
	}
	return true
}

// End closes the stroke in progress, if any.
func (r *Recorder) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endLocked()
}

func (r *Recorder) endLocked() {
	if r.current == nil {
		return
	}
	if len(r.current.Points) > 0 {
		r.strokes = append(r.strokes, *r.current)
	}
	r.current = nil
}

func (r *Recorder) countLocked() int {
	n := PointCount(r.strokes)
	if r.current != nil {
		n += len(r.current.Points)
	}
	return n
}

// Clear drops all strokes and resets the budget.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strokes = nil
	r.current = nil
	r.full = false
}

// Drawing reports whether a stroke is in progress.
func (r *Recorder) Drawing() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current != nil
}

// Full reports whether the point budget has been reached.
func (r *Recorder) Full() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.full
}

// Points returns the number of recorded points, including the stroke in
// progress.
func (r *Recorder) Points() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.countLocked()
}

// Strokes returns a copy of the completed strokes.
func (r *Recorder) Strokes() []Stroke {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Stroke, len(r.strokes))
	for i, s := range r.strokes {
		out[i] = Stroke{Points: append([]Point(nil), s.Points...)}
	}
	return out
}

// Current returns a copy of the stroke in progress.
func (r *Recorder) Current() (Stroke, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return Stroke{}, false
	}
	return Stroke{Points: append([]Point(nil), r.current.Points...)}, true
}
