package state

import (
	"errors"
	"log"
	"sync"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

// StyleSession is a Browser that can switch into drawing mode to re-draw
// the current sample or start a new one. Saving overwrites the current
// index.
type StyleSession struct {
	*Browser
	Recorder *stroke.Recorder

	mu          sync.RWMutex
	drawing     bool
	text        string
	defaultText string
}

// NewStyleSession opens st at index 0 in view mode.
func NewStyleSession(st *store.Store, codec stroke.Codec, defaultText string, pointBudget int) *StyleSession {
	s := &StyleSession{
		Browser:     NewBrowser(st, codec),
		Recorder:    stroke.NewRecorder(pointBudget),
		defaultText: defaultText,
	}
	s.afterLoad()
	return s
}

// afterLoad returns to view mode with the loaded sample's text.
func (s *StyleSession) afterLoad() {
	s.Recorder.Clear()
	text := s.defaultText
	if s.Browser.Err() == nil {
		text = s.Browser.Sample().Text
	}
	s.mu.Lock()
	s.drawing = false
	s.text = text
	s.mu.Unlock()
}

// Drawing reports whether the session is in drawing mode.
func (s *StyleSession) Drawing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawing
}

// Text is the reference text that Save will write.
func (s *StyleSession) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.drawing && s.Browser.Err() != nil {
		return LoadErrorText
	}
	return s.text
}

func (s *StyleSession) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

func (s *StyleSession) Info() string {
	info := s.Browser.Info()
	if s.Drawing() {
		info += " (Drawing Mode)"
	}
	return info
}

func (s *StyleSession) Prev() bool {
	if !s.Browser.Prev() {
		return false
	}
	s.afterLoad()
	return true
}

func (s *StyleSession) Next() bool {
	if !s.Browser.Next() {
		return false
	}
	s.afterLoad()
	return true
}

func (s *StyleSession) Refresh() {
	s.Browser.Refresh()
	s.afterLoad()
}

func (s *StyleSession) Delete() error {
	err := s.Browser.Delete()
	s.afterLoad()
	return err
}

// ToggleDraw switches between view and drawing mode. Leaving drawing mode
// discards unsaved strokes and reloads the sample.
func (s *StyleSession) ToggleDraw() {
	s.mu.Lock()
	s.drawing = !s.drawing
	drawing := s.drawing
	s.mu.Unlock()
	if !drawing {
		s.Refresh()
	}
}

// Clear discards the strokes drawn so far.
func (s *StyleSession) Clear() {
	s.Recorder.Clear()
	s.Browser.setStatus("Cleared")
}

// NewStyle starts an unsaved sample one past the current max in drawing
// mode with the default text.
func (s *StyleSession) NewStyle() int {
	idx := s.Browser.startNew()
	s.Recorder.Clear()
	s.mu.Lock()
	s.drawing = true
	s.text = s.defaultText
	s.mu.Unlock()
	log.Printf("[STYLE %s] New style %d", s.Browser.id, idx)
	return idx
}

// Save encodes the drawn strokes over the current index and reloads it.
// Nothing is written when there are no complete strokes.
func (s *StyleSession) Save() error {
	idx := s.Browser.Current()
	rows, err := s.Browser.codec.Encode(s.Recorder.Strokes())
	if errors.Is(err, stroke.ErrEmpty) {
		s.Browser.setStatus("Warning: No valid strokes to save!")
		return err
	}
	if err != nil {
		s.Browser.setStatus("Error encoding strokes: %v", err)
		return err
	}

	s.mu.RLock()
	text := s.text
	s.mu.RUnlock()
	if err := s.Browser.store.Save(idx, rows, text); err != nil {
		s.Browser.setStatus("Error saving style %d: %v", idx, err)
		log.Printf("[STYLE %s] Save failed: %v", s.Browser.id, err)
		return err
	}

	s.Browser.saved(idx)
	s.afterLoad()
	s.Browser.setStatus("Success! Saved as style-%d (%d rows)", idx, len(rows))
	log.Printf("[STYLE %s] Saved style-%d with %d rows", s.Browser.id, idx, len(rows))
	return nil
}
