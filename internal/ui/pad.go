package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"StyleKit/internal/stroke"
)

// Guideline rows drawn across the pad, in pad coordinates.
var guideLines = []float32{100, 150}

var (
	guideColor   = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	previewColor = color.NRGBA{A: 128}
)

// StrokePad is a drawing surface. When editable, primary-button drags are
// recorded into its Recorder; otherwise it shows a fixed set of strokes.
type StrokePad struct {
	widget.BaseWidget
	recorder *stroke.Recorder

	mu          sync.RWMutex
	editable    bool
	shown       []stroke.Stroke
	strokeWidth float32

	// OnStrokeEnd is called after each pen-up.
	OnStrokeEnd func()
}

var _ fyne.Widget = (*StrokePad)(nil)
var _ fyne.Draggable = (*StrokePad)(nil)
var _ desktop.Mouseable = (*StrokePad)(nil)

// NewStrokePad returns a read-only pad recording into rec once editable.
func NewStrokePad(rec *stroke.Recorder) *StrokePad {
	p := &StrokePad{recorder: rec, strokeWidth: 2}
	p.ExtendBaseWidget(p)
	return p
}

func (p *StrokePad) SetEditable(editable bool) {
	p.mu.Lock()
	p.editable = editable
	p.mu.Unlock()
	if !editable && p.recorder != nil {
		p.recorder.End()
	}
	p.Refresh()
}

func (p *StrokePad) Editable() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.editable && p.recorder != nil
}

// ShowStrokes sets the strokes drawn while the pad is not editable.
func (p *StrokePad) ShowStrokes(strokes []stroke.Stroke) {
	p.mu.Lock()
	p.shown = strokes
	p.mu.Unlock()
	p.Refresh()
}

func (p *StrokePad) SetStrokeWidth(w float32) {
	p.mu.Lock()
	p.strokeWidth = w
	p.mu.Unlock()
	p.Refresh()
}

func toPoint(pos fyne.Position) stroke.Point {
	return stroke.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

func (p *StrokePad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !p.Editable() {
		return
	}
	p.recorder.Begin(toPoint(e.Position))
	p.Refresh()
}

func (p *StrokePad) Dragged(e *fyne.DragEvent) {
	if !p.Editable() || !p.recorder.Drawing() {
		return
	}
	p.recorder.Add(toPoint(e.Position))
	p.Refresh()
}

func (p *StrokePad) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.penUp()
}

func (p *StrokePad) DragEnd() {
	p.penUp()
}

func (p *StrokePad) penUp() {
	if !p.Editable() || !p.recorder.Drawing() {
		return
	}
	p.recorder.End()
	p.Refresh()
	if p.OnStrokeEnd != nil {
		p.OnStrokeEnd()
	}
}

func (p *StrokePad) MouseIn(*desktop.MouseEvent)    {}
func (p *StrokePad) MouseOut()                      {}
func (p *StrokePad) MouseMoved(*desktop.MouseEvent) {}

// visible returns the strokes to draw and the stroke in progress.
func (p *StrokePad) visible() ([]stroke.Stroke, *stroke.Stroke) {
	if p.Editable() {
		strokes := p.recorder.Strokes()
		if cur, ok := p.recorder.Current(); ok {
			return strokes, &cur
		}
		return strokes, nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.shown, nil
}

func (p *StrokePad) CreateRenderer() fyne.WidgetRenderer {
	r := &strokePadRenderer{pad: p}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type strokePadRenderer struct {
	pad        *StrokePad
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *strokePadRenderer) rebuild() {
	size := r.pad.Size()
	r.pad.mu.RLock()
	width := r.pad.strokeWidth
	r.pad.mu.RUnlock()

	objects := []fyne.CanvasObject{r.background}
	for _, y := range guideLines {
		line := canvas.NewLine(guideColor)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		objects = append(objects, line)
	}

	strokes, current := r.pad.visible()
	for _, st := range strokes {
		objects = appendSegments(objects, st, color.Black, width)
	}
	if current != nil {
		objects = appendSegments(objects, *current, previewColor, width)
	}
	r.objects = objects
}

func appendSegments(objects []fyne.CanvasObject, st stroke.Stroke, c color.Color, width float32) []fyne.CanvasObject {
	for i := 1; i < len(st.Points); i++ {
		a, b := st.Points[i-1], st.Points[i]
		seg := canvas.NewLine(c)
		seg.StrokeWidth = width
		seg.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
		seg.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
		objects = append(objects, seg)
	}
	return objects
}

func (r *strokePadRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *strokePadRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.pad)
}

func (r *strokePadRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.rebuild()
}

func (r *strokePadRenderer) MinSize() fyne.Size {
	return fyne.NewSize(800, 300)
}

func (r *strokePadRenderer) Destroy() {}
