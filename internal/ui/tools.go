package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// action is one labelled button in a tool's button row.
type action struct {
	label string
	run   func()
}

// newButtonRow lays out one button per action, left to right, followed by
// the pen width slider for pad.
func newButtonRow(pad *StrokePad, actions ...action) (fyne.CanvasObject, map[string]*widget.Button) {
	buttons := make(map[string]*widget.Button, len(actions))
	objects := make([]fyne.CanvasObject, 0, len(actions)+4)
	for _, a := range actions {
		b := widget.NewButton(a.label, a.run)
		buttons[a.label] = b
		objects = append(objects, b)
	}

	strokeSlider := widget.NewSlider(1.0, 8.0)
	strokeSlider.SetValue(2.0)
	strokeSlider.OnChanged = func(val float64) {
		pad.SetStrokeWidth(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	objects = append(objects,
		layout.NewSpacer(),
		widget.NewLabel("Size:"),
		sliderContainer,
	)
	return container.NewHBox(objects...), buttons
}

// onArrowKeys routes left and right arrow presses on the window canvas.
func onArrowKeys(w fyne.Window, left, right func()) {
	w.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyLeft:
			left()
		case fyne.KeyRight:
			right()
		}
	})
}
