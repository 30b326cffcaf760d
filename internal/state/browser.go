package state

import (
	"fmt"
	"log"
	"sync"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

// Browser steps through the samples of a store one index at a time. A
// missing or unreadable index shows an empty sample with an error text;
// navigation never skips over it.
type Browser struct {
	mu      sync.RWMutex
	id      string
	store   *store.Store
	codec   stroke.Codec
	current int
	max     int
	sample  store.Sample
	strokes []stroke.Stroke
	loadErr error
	status  string
}

// NewBrowser opens st at index 0.
func NewBrowser(st *store.Store, codec stroke.Codec) *Browser {
	b := &Browser{
		id:    newSessionID(),
		store: st,
		codec: codec,
		max:   st.MaxIndex(),
	}
	b.load()
	log.Printf("[BROWSE %s] Opened %s, max style %d", b.id, st.Dir(), b.max)
	return b
}

// load reads the current index. Callers must not hold b.mu.
func (b *Browser) load() {
	b.mu.RLock()
	idx := b.current
	b.mu.RUnlock()

	sample, err := b.store.Load(idx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		log.Printf("[BROWSE %s] Error loading style %d: %v", b.id, idx, err)
		b.sample = store.Sample{Index: idx}
		b.strokes = nil
		b.loadErr = err
		b.status = fmt.Sprintf("Error loading style %d", idx)
		return
	}
	b.sample = sample
	b.strokes = b.codec.Decode(sample.Offsets)
	b.loadErr = nil
	b.status = fmt.Sprintf("Loaded style %d", idx)
}

func (b *Browser) Current() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

func (b *Browser) Max() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.max
}

// Sample returns the loaded sample; it is empty when Err is non-nil.
func (b *Browser) Sample() store.Sample {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sample
}

// Strokes returns the decoded strokes of the loaded sample.
func (b *Browser) Strokes() []stroke.Stroke {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.strokes
}

// Err returns the error from the last load, if any.
func (b *Browser) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loadErr
}

// Text returns the reference text for display.
func (b *Browser) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.loadErr != nil {
		return LoadErrorText
	}
	return b.sample.Text
}

func (b *Browser) Status() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

func (b *Browser) setStatus(format string, args ...any) {
	b.mu.Lock()
	b.status = fmt.Sprintf(format, args...)
	b.mu.Unlock()
}

// Info is the header line shown above the canvas.
func (b *Browser) Info() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return fmt.Sprintf("Style %d of %d", b.current, b.max)
}

// Prev moves to the previous index. It reports false at index 0.
func (b *Browser) Prev() bool {
	b.mu.Lock()
	if b.current <= 0 {
		b.mu.Unlock()
		return false
	}
	b.current--
	b.mu.Unlock()
	b.load()
	return true
}

// Next moves to the next index. It reports false at the max index.
func (b *Browser) Next() bool {
	b.mu.Lock()
	if b.current >= b.max {
		b.mu.Unlock()
		return false
	}
	b.current++
	b.mu.Unlock()
	b.load()
	return true
}

// Refresh rescans the store and reloads the current index.
func (b *Browser) Refresh() {
	m := b.store.MaxIndex()
	b.mu.Lock()
	b.max = max(m, b.current)
	b.mu.Unlock()
	b.load()
}

// Delete removes the current sample, then reloads the nearest surviving
// index at or below it. A partial failure is reported and the current
// index is reloaded as is.
func (b *Browser) Delete() error {
	idx := b.Current()
	if err := b.store.Delete(idx); err != nil {
		log.Printf("[BROWSE %s] Error deleting style %d: %v", b.id, idx, err)
		b.load()
		b.setStatus("Error deleting style %d: %v", idx, err)
		return err
	}

	m := b.store.MaxIndex()
	b.mu.Lock()
	b.max = m
	if b.current > b.max {
		b.current = max(b.max, 0)
	}
	b.mu.Unlock()
	b.load()
	b.setStatus("Deleted style %d", idx)
	return nil
}

// startNew points the browser at a fresh index one past the max without
// loading anything.
func (b *Browser) startNew() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.max++
	b.current = b.max
	b.sample = store.Sample{Index: b.current}
	b.strokes = nil
	b.loadErr = nil
	b.status = fmt.Sprintf("New style %d", b.current)
	return b.current
}

// saved records that idx now holds a sample and reloads it.
func (b *Browser) saved(idx int) {
	b.mu.Lock()
	b.max = max(b.max, idx)
	b.mu.Unlock()
	b.load()
}
