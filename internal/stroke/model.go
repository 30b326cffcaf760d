package stroke

import "math"

// Point is a position on the drawing surface. Y grows downward.
type Point struct{ X, Y float64 }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Near reports whether p and q are within eps of each other on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Stroke is one pen-down to pen-up run of points.
type Stroke struct {
	Points []Point
}

// Offset is one persisted row: the step to the next point, with DY pointing
// up, and whether that point closes its stroke.
type Offset struct {
	DX, DY float64
	End    bool
}

// Row returns the offset as a [dx, dy, end_of_stroke] triple.
func (o Offset) Row() [3]float64 {
	end := 0.0
	if o.End {
		end = 1
	}
	return [3]float64{o.DX, o.DY, end}
}

// OffsetFromRow is the inverse of Offset.Row. Any non-zero flag counts as
// an end of stroke.
func OffsetFromRow(r [3]float64) Offset {
	return Offset{DX: r[0], DY: r[1], End: r[2] != 0}
}

// PointCount returns the number of points across all strokes.
func PointCount(strokes []Stroke) int {
	n := 0
	for _, s := range strokes {
		n += len(s.Points)
	}
	return n
}
