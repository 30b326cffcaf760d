// Package export renders style samples to PDF and PNG for review outside
// the tools.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"StyleKit/internal/store"
	"StyleKit/internal/stroke"
)

// pxPerMM maps canvas pixels to page millimetres; an 800px canvas spans
// 267mm of the landscape page.
const pxPerMM = 3

// PDF writes sample to path as a single landscape A4 page.
func PDF(path string, sample store.Sample, codec stroke.Codec) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle(fmt.Sprintf("style-%d", sample.Index), true)
	p.AddPage()

	tr := p.UnicodeTranslatorFromDescriptor("")
	p.SetFont("Helvetica", "", 12)
	p.Text(10, 12, tr(fmt.Sprintf("Style %d: %s", sample.Index, sample.Text)))

	const top = 20.0
	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	for _, y := range []float64{100, 150} {
		p.Line(10, top+y/pxPerMM, 10+800/pxPerMM, top+y/pxPerMM)
	}

	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(0.5)
	p.SetLineCapStyle("round")
	for _, st := range codec.Decode(sample.Offsets) {
		for i := 1; i < len(st.Points); i++ {
			a, b := st.Points[i-1], st.Points[i]
			p.Line(10+a.X/pxPerMM, top+a.Y/pxPerMM, 10+b.X/pxPerMM, top+b.Y/pxPerMM)
		}
	}
	return p.OutputFileAndClose(path)
}
