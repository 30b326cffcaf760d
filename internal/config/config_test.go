package config

import (
	"path/filepath"
	"testing"

	"StyleKit/internal/stroke"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"STYLE_PATH", "STYLE_EXPORT_PATH", "STYLE_ANCHOR", "STYLE_SCALE", "STYLE_POINT_BUDGET", "CAPTURE_TEXT", "STYLE_DEFAULT_TEXT"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.StylePath != DefaultStylePath {
		t.Errorf("StylePath = %q", cfg.StylePath)
	}
	if cfg.ExportPath != filepath.Join(DefaultStylePath, "export") {
		t.Errorf("ExportPath = %q", cfg.ExportPath)
	}
	if cfg.Anchor != stroke.DefaultAnchor || cfg.Scale != 1 || cfg.PointBudget != 0 {
		t.Errorf("got anchor %v scale %v budget %d", cfg.Anchor, cfg.Scale, cfg.PointBudget)
	}
	if cfg.Codec() != stroke.NewCodec() {
		t.Errorf("Codec() = %+v", cfg.Codec())
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("STYLE_PATH", "/data/styles")
	t.Setenv("STYLE_EXPORT_PATH", "")
	t.Setenv("STYLE_ANCHOR", " 10 , 20.5")
	t.Setenv("STYLE_SCALE", "1.5")
	t.Setenv("STYLE_POINT_BUDGET", "700")
	t.Setenv("CAPTURE_TEXT", "hello")

	cfg := FromEnv()
	if cfg.ExportPath != filepath.Join("/data/styles", "export") {
		t.Errorf("ExportPath = %q", cfg.ExportPath)
	}
	if cfg.Anchor != (stroke.Point{X: 10, Y: 20.5}) {
		t.Errorf("Anchor = %v", cfg.Anchor)
	}
	if cfg.Scale != 1.5 || cfg.PointBudget != 700 || cfg.CaptureText != "hello" {
		t.Errorf("got %+v", cfg)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("STYLE_ANCHOR", "400")
	t.Setenv("STYLE_SCALE", "-2")
	t.Setenv("STYLE_POINT_BUDGET", "lots")

	cfg := FromEnv()
	if cfg.Anchor != stroke.DefaultAnchor || cfg.Scale != 1 || cfg.PointBudget != 0 {
		t.Errorf("got %+v", cfg)
	}
}
