package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

func testSample(t *testing.T) store.Sample {
	t.Helper()
	rows, err := stroke.NewCodec().Encode([]stroke.Stroke{
		{Points: []stroke.Point{{X: 100, Y: 120}, {X: 300, Y: 120}}},
		{Points: []stroke.Point{{X: 200, Y: 60}, {X: 200, Y: 140}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return store.Sample{Index: 7, Offsets: rows, Text: "zebra – ü"}
}

func TestPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "style-7.pdf")
	if err := PDF(path, testSample(t), stroke.NewCodec()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("not a PDF: %q", data[:8])
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testSample(t), stroke.NewCodec(), 400, 200); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("size %v", b)
	}

	dark := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r < 0x4000 && g < 0x4000 && b < 0x4000
	}
	if !dark(250, 120) {
		t.Error("horizontal stroke not drawn")
	}
	if !dark(200, 80) {
		t.Error("vertical stroke not drawn")
	}
	if dark(350, 180) {
		t.Error("background not white")
	}
}

func TestPNGClipsAtEdge(t *testing.T) {
	rows, err := stroke.NewCodec().Encode([]stroke.Stroke{
		{Points: []stroke.Point{{X: 300, Y: 100}, {X: 500, Y: 200}}},
		{Points: []stroke.Point{{X: -50, Y: -50}, {X: -10, Y: -80}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := PNG(&buf, store.Sample{Offsets: rows}, stroke.NewCodec(), 400, 200); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	dark := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r < 0x8000 && g < 0x8000 && b < 0x8000
	}

	// The line y = 100 + (x-300)/2 leaves the canvas at (400, 150).
	for _, x := range []int{320, 360, 399} {
		if y := 100 + (x-300)/2; !dark(x, y) {
			t.Errorf("pixel (%d, %d) on the stroke is not drawn", x, y)
		}
	}
	for _, y := range []int{120, 170, 185, 199} {
		if dark(399, y) {
			t.Errorf("border pixel (399, %d) off the stroke is drawn", y)
		}
	}
}

func TestClipPolygon(t *testing.T) {
	square := []stroke.Point{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}}
	got := clipPolygon(square, 100, 100)
	if len(got) != 4 {
		t.Fatalf("got %v", got)
	}
	for _, p := range got {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Errorf("vertex %v outside the clipped square", p)
		}
	}
	if got := clipPolygon([]stroke.Point{{X: -5, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 5}}, 100, 100); len(got) != 0 {
		t.Errorf("polygon left of the canvas clipped to %v", got)
	}
}

func TestPNGInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testSample(t), stroke.NewCodec(), 0, 10); err == nil {
		t.Error("expected an error for an empty image")
	}
}

func TestFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	paths, err := Files(dir, testSample(t), stroke.NewCodec())
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{filepath.Join(dir, "style-7.pdf"), filepath.Join(dir, "style-7.png")}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v", paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("path %d = %q, want %q", i, paths[i], p)
		}
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty: %v", p, err)
		}
	}
}
