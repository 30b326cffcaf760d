package export

import (
	"fmt"
	"os"
	"path/filepath"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

// PreviewWidth and PreviewHeight match the tools' drawing canvas.
const (
	PreviewWidth  = 800
	PreviewHeight = 300
)

// Files writes style-<i>.pdf and style-<i>.png for sample into dir and
// returns their paths.
func Files(dir string, sample store.Sample, codec stroke.Codec) ([]string, error) {
	base := filepath.Join(dir, fmt.Sprintf("style-%d", sample.Index))

	pdfPath := base + ".pdf"
	if err := PDF(pdfPath, sample, codec); err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}

	pngPath := base + ".png"
	f, err := os.Create(pngPath)
	if err != nil {
		return nil, fmt.Errorf("create png: %w", err)
	}
	if err := PNG(f, sample, codec, PreviewWidth, PreviewHeight); err != nil {
		f.Close()
		return nil, fmt.Errorf("export png: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close png: %w", err)
	}
	return []string{pdfPath, pngPath}, nil
}
