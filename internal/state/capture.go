package state

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

// Capture records strokes for a reference text and saves each finished
// sample at the store's next free index.
type Capture struct {
	mu       sync.RWMutex
	id       string
	store    *store.Store
	codec    stroke.Codec
	text     string
	status   string
	Recorder *stroke.Recorder
}

// NewCapture returns a capture session writing to st.
func NewCapture(st *store.Store, codec stroke.Codec, text string, pointBudget int) *Capture {
	c := &Capture{
		id:       newSessionID(),
		store:    st,
		codec:    codec,
		text:     text,
		status:   "Ready",
		Recorder: stroke.NewRecorder(pointBudget),
	}
	log.Printf("[CAPTURE %s] Session started, saving to %s", c.id, st.Dir())
	return c
}

func (c *Capture) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text
}

func (c *Capture) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

func (c *Capture) Status() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Capture) setStatus(format string, args ...any) {
	c.mu.Lock()
	c.status = fmt.Sprintf(format, args...)
	c.mu.Unlock()
}

// Clear discards all recorded strokes.
func (c *Capture) Clear() {
	c.Recorder.Clear()
	c.setStatus("Cleared")
}

// Save encodes the recorded strokes and writes them as a new sample. It
// returns the index written. When there is nothing to save, or the write
// fails, the strokes are kept so the user can retry.
func (c *Capture) Save() (int, error) {
	rows, err := c.codec.Encode(c.Recorder.Strokes())
	if errors.Is(err, stroke.ErrEmpty) {
		c.setStatus("Warning: No valid strokes to save! Make sure to draw complete strokes.")
		log.Printf("[CAPTURE %s] Nothing to save", c.id)
		return -1, err
	}
	if err != nil {
		c.setStatus("Error encoding strokes: %v", err)
		return -1, err
	}

	idx := c.store.NextFreeIndex()
	if err := c.store.Save(idx, rows, c.Text()); err != nil {
		c.setStatus("Error saving style-%d: %v", idx, err)
		log.Printf("[CAPTURE %s] Save failed: %v", c.id, err)
		return -1, err
	}

	c.Recorder.Clear()
	c.setStatus("Success! Saved as style-%d (%d rows)", idx, len(rows))
	log.Printf("[CAPTURE %s] Saved style-%d with %d rows", c.id, idx, len(rows))
	return idx, nil
}
