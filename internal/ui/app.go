// Package ui builds the Fyne windows of the capture, style and viewer tools
// on top of the sessions in package state.
package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"StyleKit/internal/config"
	"StyleKit/internal/export"
	"StyleKit/internal/state"
	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

// RunCapture opens the capture window and blocks until it is closed.
func RunCapture(cfg config.Config) {
	a := app.New()
	v := newCaptureView(a, cfg)
	v.window.ShowAndRun()
}

// RunStyleTool opens the style tool window and blocks until it is closed.
func RunStyleTool(cfg config.Config) {
	a := app.New()
	v := newStyleView(a, cfg)
	v.window.ShowAndRun()
}

// RunViewer opens the style viewer window and blocks until it is closed.
func RunViewer(cfg config.Config) {
	a := app.New()
	v := newViewerView(a, cfg)
	v.window.ShowAndRun()
}

// --- Capture ---

type captureView struct {
	session *state.Capture
	window  fyne.Window
	pad     *StrokePad
	text    *widget.Entry
	status  *widget.Label
}

func newCaptureView(a fyne.App, cfg config.Config) *captureView {
	v := &captureView{
		session: state.NewCapture(store.New(cfg.StylePath), cfg.Codec(), cfg.CaptureText, cfg.PointBudget),
		window:  a.NewWindow("Handwriting Capture"),
		text:    widget.NewEntry(),
		status:  widget.NewLabel("Ready"),
	}
	v.pad = NewStrokePad(v.session.Recorder)
	v.pad.SetEditable(true)
	v.pad.OnStrokeEnd = func() {
		if v.session.Recorder.Full() {
			v.status.SetText("Point limit reached, save or clear to continue")
		}
	}

	v.text.SetText(v.session.Text())
	v.text.OnChanged = v.session.SetText

	buttons, _ := newButtonRow(v.pad,
		action{"Clear", v.clear},
		action{"Save", v.save},
	)
	top := container.NewBorder(nil, nil, widget.NewLabel("Text:"), nil, v.text)
	bottom := container.NewVBox(buttons, v.status)
	v.window.SetContent(container.NewBorder(top, bottom, nil, nil, v.pad))
	v.window.Resize(fyne.NewSize(820, 420))
	return v
}

func (v *captureView) clear() {
	v.session.Clear()
	v.pad.Refresh()
	v.status.SetText(v.session.Status())
}

func (v *captureView) save() {
	_, _ = v.session.Save()
	v.pad.Refresh()
	v.status.SetText(v.session.Status())
}

// --- Browsing (style tool and viewer) ---

// browsing is what the style tool and the viewer have in common.
type browsing interface {
	Info() string
	Text() string
	Status() string
	Strokes() []stroke.Stroke
	Sample() store.Sample
	Err() error
	Prev() bool
	Next() bool
	Delete() error
}

type browseView struct {
	session browsing
	cfg     config.Config
	window  fyne.Window
	pad     *StrokePad
	info    *widget.Label
	text    *widget.Label // nil when the window edits the text in an entry
	status  *widget.Label
}

func newBrowseView(a fyne.App, title string, cfg config.Config, session browsing, rec *stroke.Recorder) *browseView {
	return &browseView{
		session: session,
		cfg:     cfg,
		window:  a.NewWindow(title),
		pad:     NewStrokePad(rec),
		info:    widget.NewLabel(""),
		status:  widget.NewLabel(""),
	}
}

// sync copies the session state into the widgets.
func (v *browseView) sync() {
	v.info.SetText(v.session.Info())
	if v.text != nil {
		v.text.SetText("Text: " + truncate(v.session.Text(), 50))
	}
	v.status.SetText(v.session.Status())
	v.pad.ShowStrokes(v.session.Strokes())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func (v *browseView) prev() {
	if v.session.Prev() {
		v.sync()
	}
}

func (v *browseView) next() {
	if v.session.Next() {
		v.sync()
	}
}

func (v *browseView) confirmDelete(then func()) {
	msg := fmt.Sprintf("Delete style %d? Both of its files are removed.", v.session.Sample().Index)
	dialog.ShowConfirm("Delete style", msg, func(ok bool) {
		if ok {
			then()
		}
	}, v.window)
}

func (v *browseView) deleteCurrent() {
	_ = v.session.Delete()
	v.sync()
}

func (v *browseView) exportCurrent() {
	sample := v.session.Sample()
	if v.session.Err() != nil || len(sample.Offsets) == 0 {
		v.status.SetText("Nothing to export")
		return
	}
	paths, err := export.Files(v.cfg.ExportPath, sample, v.cfg.Codec())
	if err != nil {
		log.Printf("[EXPORT] style-%d: %v", sample.Index, err)
		v.status.SetText(fmt.Sprintf("Export failed: %v", err))
		return
	}
	v.status.SetText("Exported " + strings.Join(paths, ", "))
}

// --- Viewer ---

type viewerView struct {
	*browseView
	browser *state.Browser
}

func newViewerView(a fyne.App, cfg config.Config) *viewerView {
	b := state.NewBrowser(store.New(cfg.StylePath), cfg.Codec())
	v := &viewerView{
		browseView: newBrowseView(a, "Style Viewer", cfg, b, nil),
		browser:    b,
	}
	v.text = widget.NewLabel("")

	buttons, _ := newButtonRow(v.pad,
		action{"Previous", v.prev},
		action{"Next", v.next},
		action{"Delete", func() { v.confirmDelete(v.deleteCurrent) }},
		action{"Export", v.exportCurrent},
	)
	onArrowKeys(v.window, v.prev, v.next)

	top := container.NewVBox(v.info, v.text)
	bottom := container.NewVBox(buttons, v.status)
	v.window.SetContent(container.NewBorder(top, bottom, nil, nil, v.pad))
	v.window.Resize(fyne.NewSize(820, 480))
	v.sync()
	return v
}

// --- Style tool ---

type styleView struct {
	*browseView
	style    *state.StyleSession
	entry    *widget.Entry
	drawBtn  *widget.Button
	editOnly []*widget.Button
}

func newStyleView(a fyne.App, cfg config.Config) *styleView {
	s := state.NewStyleSession(store.New(cfg.StylePath), cfg.Codec(), cfg.StyleText, cfg.PointBudget)
	v := &styleView{
		browseView: newBrowseView(a, "Style Tool", cfg, s, s.Recorder),
		style:      s,
		entry:      widget.NewEntry(),
	}
	v.entry.OnChanged = func(text string) {
		if v.style.Drawing() {
			v.style.SetText(text)
		}
	}
	v.pad.OnStrokeEnd = func() {
		if v.style.Recorder.Full() {
			v.status.SetText("Point limit reached, save or clear to continue")
		}
	}

	buttons, byLabel := newButtonRow(v.pad,
		action{"Previous", v.prev},
		action{"Next", v.next},
		action{"Delete", func() { v.confirmDelete(v.deleteCurrent) }},
		action{"Draw", v.toggleDraw},
		action{"Clear", v.clear},
		action{"Save", v.save},
		action{"Refresh", v.refresh},
		action{"Export", v.exportCurrent},
	)
	v.drawBtn = byLabel["Draw"]
	v.editOnly = []*widget.Button{byLabel["Clear"], byLabel["Save"]}
	onArrowKeys(v.window, v.prev, v.next)

	newBtn := widget.NewButton("New Style", v.newStyle)
	header := container.NewBorder(nil, nil, nil, newBtn, v.info)
	textRow := container.NewBorder(nil, nil, widget.NewLabel("Text:"), nil, v.entry)
	top := container.NewVBox(header, textRow)
	bottom := container.NewVBox(buttons, v.status)
	v.window.SetContent(container.NewBorder(top, bottom, nil, nil, v.pad))
	v.window.Resize(fyne.NewSize(880, 520))
	v.sync()
	return v
}

// sync extends browseView.sync with the drawing-mode widgets.
func (v *styleView) sync() {
	v.browseView.sync()
	drawing := v.style.Drawing()
	v.pad.SetEditable(drawing)
	v.entry.SetText(v.style.Text())
	if drawing {
		v.drawBtn.SetText("View")
		v.entry.Enable()
		for _, b := range v.editOnly {
			b.Enable()
		}
	} else {
		v.drawBtn.SetText("Draw")
		v.entry.Disable()
		for _, b := range v.editOnly {
			b.Disable()
		}
	}
}

func (v *styleView) prev() {
	if v.style.Prev() {
		v.sync()
	}
}

func (v *styleView) next() {
	if v.style.Next() {
		v.sync()
	}
}

func (v *styleView) deleteCurrent() {
	_ = v.style.Delete()
	v.sync()
}

func (v *styleView) toggleDraw() {
	v.style.ToggleDraw()
	v.sync()
}

func (v *styleView) clear() {
	v.style.Clear()
	v.pad.Refresh()
	v.status.SetText(v.style.Status())
}

func (v *styleView) save() {
	_ = v.style.Save()
	v.sync()
}

func (v *styleView) refresh() {
	v.style.Refresh()
	v.sync()
}

func (v *styleView) newStyle() {
	v.style.NewStyle()
	v.sync()
}
