// Package stroke converts between pen strokes in screen space and the
// relative offset rows stored in style samples.
package stroke

import "errors"

// ErrEmpty is returned by Encode when no stroke has at least two points.
var ErrEmpty = errors.New("no strokes with at least two points")

// DefaultAnchor is the screen position the first stroke is measured from.
var DefaultAnchor = Point{X: 400, Y: 150}

// Codec encodes and decodes strokes relative to a fixed anchor. Offsets are
// stored in screen pixels divided by Scale; a zero Scale means 1.
//
// Samples must be decoded with the same Anchor and Scale they were encoded
// with, otherwise they render shifted or resized.
type Codec struct {
	Anchor Point
	Scale  float64
}

// NewCodec returns a codec using the default anchor and unit scale.
func NewCodec() Codec {
	return Codec{Anchor: DefaultAnchor, Scale: 1}
}

func (c Codec) scale() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

// Encode turns strokes into offset rows. Strokes with fewer than two points
// are dropped. Each retained stroke yields one row per point: the jump from
// the previous retained stroke's last point (or the anchor) to its first
// point, then the steps between consecutive points. The last row of every
// stroke is flagged as its end.
func (c Codec) Encode(strokes []Stroke) ([]Offset, error) {
	s := c.scale()
	var out []Offset
	last := c.Anchor
	for _, st := range strokes {
		if len(st.Points) < 2 {
			continue
		}
		prev := last
		for _, p := range st.Points {
			d := p.Sub(prev)
			out = append(out, Offset{DX: d.X / s, DY: -d.Y / s})
			prev = p
		}
		out[len(out)-1].End = true
		last = prev
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Decode replays offset rows from the anchor and returns the absolute
// strokes. Rows after the last end flag form a final, unterminated stroke.
func (c Codec) Decode(offsets []Offset) []Stroke {
	s := c.scale()
	var strokes []Stroke
	var cur []Point
	pos := c.Anchor
	for _, o := range offsets {
		pos = pos.Add(Point{X: o.DX * s, Y: -o.DY * s})
		cur = append(cur, pos)
		if o.End {
			strokes = append(strokes, Stroke{Points: cur})
			cur = nil
		}
	}
	if len(cur) > 0 {
		strokes = append(strokes, Stroke{Points: cur})
	}
	return strokes
}
