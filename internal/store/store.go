// Package store keeps style samples on disk as numbered pairs of numpy
// files: style-<i>-strokes.npy holding the (n, 3) offset array and
// style-<i>-chars.npy holding the reference text.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"StyleKit/internal/stroke"
)

var (
	// ErrNotFound means one or both files of a sample are missing.
	ErrNotFound = errors.New("style sample not found")
	// ErrCorrupt means the sample files exist but could not be decoded.
	ErrCorrupt = errors.New("style sample is corrupt")
)

var strokesFileRe = regexp.MustCompile(`^style-(\d+)-strokes\.npy$`)

// Sample is one saved handwriting style.
type Sample struct {
	Index   int
	Offsets []stroke.Offset
	Text    string
}

// Store is a directory of style samples. It assumes a single writer.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// StrokesPath returns the offsets file for index i.
func (s *Store) StrokesPath(i int) string {
	return filepath.Join(s.dir, fmt.Sprintf("style-%d-strokes.npy", i))
}

// CharsPath returns the text file for index i.
func (s *Store) CharsPath(i int) string {
	return filepath.Join(s.dir, fmt.Sprintf("style-%d-chars.npy", i))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Exists reports whether both files for index i are present. A half-deleted
// sample does not exist.
func (s *Store) Exists(i int) bool {
	if i < 0 {
		return false
	}
	return fileExists(s.StrokesPath(i)) && fileExists(s.CharsPath(i))
}

// Indices returns the indices of complete samples in ascending order.
func (s *Store) Indices() []int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORE] Error listing %s: %v", s.dir, err)
		}
		return nil
	}
	var out []int
	for _, e := range entries {
		m := strokesFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		i, err := strconv.Atoi(m[1])
		if err != nil || !s.Exists(i) {
			continue
		}
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// MaxIndex returns the highest index holding a complete sample, or -1 when
// the store is empty.
func (s *Store) MaxIndex() int {
	idx := s.Indices()
	if len(idx) == 0 {
		return -1
	}
	return idx[len(idx)-1]
}

// NextFreeIndex returns the index a new sample should be saved at: one past
// the highest surviving sample. Gaps left by deletions are not reused.
func (s *Store) NextFreeIndex() int {
	return s.MaxIndex() + 1
}

// FirstGap returns the smallest non-negative index with no complete sample.
func (s *Store) FirstGap() int {
	i := 0
	for s.Exists(i) {
		i++
	}
	return i
}

// Save writes the sample pair at index i, replacing any existing files.
func (s *Store) Save(i int, offsets []stroke.Offset, text string) error {
	if i < 0 {
		return fmt.Errorf("invalid style index %d", i)
	}
	if len(offsets) == 0 {
		return stroke.ErrEmpty
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create style dir: %w", err)
	}

	data := make([]float64, 0, len(offsets)*3)
	for _, o := range offsets {
		r := o.Row()
		data = append(data, r[:]...)
	}
	var buf bytes.Buffer
	if err := npyio.Write(&buf, mat.NewDense(len(offsets), 3, data)); err != nil {
		return fmt.Errorf("encode strokes: %w", err)
	}
	if err := os.WriteFile(s.StrokesPath(i), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write strokes file: %w", err)
	}

	buf.Reset()
	if err := writeBytesNPY(&buf, []byte(text)); err != nil {
		return fmt.Errorf("encode chars: %w", err)
	}
	if err := os.WriteFile(s.CharsPath(i), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write chars file: %w", err)
	}

	log.Printf("[STORE] Saved style-%d: %d rows", i, len(offsets))
	return nil
}

// Load reads the sample at index i.
func (s *Store) Load(i int) (Sample, error) {
	if !s.Exists(i) {
		return Sample{}, fmt.Errorf("style-%d: %w", i, ErrNotFound)
	}

	offsets, err := s.loadOffsets(i)
	if err != nil {
		return Sample{}, fmt.Errorf("style-%d strokes: %w: %v", i, ErrCorrupt, err)
	}

	data, err := os.ReadFile(s.CharsPath(i))
	if err != nil {
		return Sample{}, fmt.Errorf("style-%d chars: %w", i, err)
	}
	text, err := decodeBytesNPY(data)
	if err != nil {
		return Sample{}, fmt.Errorf("style-%d chars: %w: %v", i, ErrCorrupt, err)
	}

	return Sample{Index: i, Offsets: offsets, Text: text}, nil
}

func (s *Store) loadOffsets(i int) (offsets []stroke.Offset, err error) {
	f, err := os.Open(s.StrokesPath(i))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// gonum panics on malformed dimensions instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decode array: %v", r)
		}
	}()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, err
	}
	rows, cols := m.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("expected shape (n, 3), got (%d, %d)", rows, cols)
	}
	offsets = make([]stroke.Offset, rows)
	for r := 0; r < rows; r++ {
		offsets[r] = stroke.OffsetFromRow([3]float64{m.At(r, 0), m.At(r, 1), m.At(r, 2)})
	}
	return offsets, nil
}

// Delete removes both files of sample i. Each removal is attempted; a
// failure does not restore the file already removed.
func (s *Store) Delete(i int) error {
	var errs []error
	for _, p := range []string{s.StrokesPath(i), s.CharsPath(i)} {
		if err := os.Remove(p); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("delete style-%d: %w", i, err)
	}
	log.Printf("[STORE] Deleted style-%d", i)
	return nil
}
