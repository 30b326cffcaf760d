package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

var guideColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// PNG rasterises sample onto a white width x height canvas with the same
// guidelines the tools draw, and labels it with the reference text.
func PNG(w io.Writer, sample store.Sample, codec stroke.Codec, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, y := range []int{100, 150} {
		if y >= height {
			continue
		}
		for x := 0; x < width; x++ {
			img.Set(x, y, guideColor)
		}
	}

	z := vector.NewRasterizer(width, height)
	for _, st := range codec.Decode(sample.Offsets) {
		if len(st.Points) < 2 {
			continue
		}
		z.Reset(width, height)
		for i := 1; i < len(st.Points); i++ {
			addSegment(z, st.Points[i-1], st.Points[i], 1, float64(width), float64(height))
		}
		z.Draw(img, img.Bounds(), image.Black, image.Point{})
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 20),
	}
	d.DrawString(fmt.Sprintf("Style %d: %s", sample.Index, sample.Text))

	return png.Encode(w, img)
}

// addSegment adds a to b as a quad of half-width hw, extended by hw at both
// ends and clipped to the w x h canvas. Every quad is wound the same way so
// overlaps never cancel.
func addSegment(z *vector.Rasterizer, a, b stroke.Point, hw, w, h float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		dx, dy, l = 1, 0, 1
	}
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux

	a = stroke.Point{X: a.X - ux, Y: a.Y - uy}
	b = stroke.Point{X: b.X + ux, Y: b.Y + uy}
	quad := clipPolygon([]stroke.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, w, h)
	if len(quad) < 3 {
		return
	}
	for i, p := range quad {
		if i == 0 {
			z.MoveTo(float32(p.X), float32(p.Y))
		} else {
			z.LineTo(float32(p.X), float32(p.Y))
		}
	}
	z.ClosePath()
}

// halfPlane is one canvas edge: points with coordinate <= v (or >= v) are
// inside.
type halfPlane struct {
	vertical bool // compare X instead of Y
	v        float64
	upper    bool
}

func (hp halfPlane) coord(p stroke.Point) float64 {
	if hp.vertical {
		return p.X
	}
	return p.Y
}

func (hp halfPlane) contains(p stroke.Point) bool {
	if hp.upper {
		return hp.coord(p) <= hp.v
	}
	return hp.coord(p) >= hp.v
}

func (hp halfPlane) cross(a, b stroke.Point) stroke.Point {
	t := (hp.v - hp.coord(a)) / (hp.coord(b) - hp.coord(a))
	return stroke.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// clipPolygon clips a convex polygon to [0,w]x[0,h] one edge at a time,
// keeping the slope of every cut edge.
func clipPolygon(poly []stroke.Point, w, h float64) []stroke.Point {
	edges := []halfPlane{
		{vertical: true, v: 0},
		{vertical: true, v: w, upper: true},
		{v: 0},
		{v: h, upper: true},
	}
	for _, hp := range edges {
		if len(poly) == 0 {
			return nil
		}
		in := poly
		poly = make([]stroke.Point, 0, len(in)+1)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case hp.contains(cur):
				if !hp.contains(prev) {
					poly = append(poly, hp.cross(prev, cur))
				}
				poly = append(poly, cur)
			case hp.contains(prev):
				poly = append(poly, hp.cross(prev, cur))
			}
			prev = cur
		}
	}
	return poly
}
