// Package config reads tool settings from the environment and an optional
// .env file in the working directory.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"StyleKit/internal/stroke"
)

const (
	DefaultStylePath   = "styles"
	DefaultCaptureText = "The quick brown fox jumps over the lazy dog"
	DefaultStyleText   = "A lazy zebra gazes at the moon"
)

// Config holds the settings shared by all three tools. Anchor and Scale must
// be identical wherever samples are written and read.
type Config struct {
	StylePath   string
	ExportPath  string
	Anchor      stroke.Point
	Scale       float64
	PointBudget int
	CaptureText string
	StyleText   string
}

// Codec returns the stroke codec for the configured anchor and scale.
func (c Config) Codec() stroke.Codec {
	return stroke.Codec{Anchor: c.Anchor, Scale: c.Scale}
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables only. Malformed values
// are logged and replaced by their defaults.
func FromEnv() Config {
	cfg := Config{
		StylePath:   envOrDefault("STYLE_PATH", DefaultStylePath),
		Anchor:      stroke.DefaultAnchor,
		Scale:       1,
		CaptureText: envOrDefault("CAPTURE_TEXT", DefaultCaptureText),
		StyleText:   envOrDefault("STYLE_DEFAULT_TEXT", DefaultStyleText),
	}
	cfg.ExportPath = envOrDefault("STYLE_EXPORT_PATH", filepath.Join(cfg.StylePath, "export"))

	if v := os.Getenv("STYLE_ANCHOR"); v != "" {
		p, err := parsePoint(v)
		if err != nil {
			log.Printf("[CONFIG] Ignoring STYLE_ANCHOR=%q: %v", v, err)
		} else {
			cfg.Anchor = p
		}
	}
	if v := os.Getenv("STYLE_SCALE"); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil || s <= 0 {
			log.Printf("[CONFIG] Ignoring STYLE_SCALE=%q: must be a positive number", v)
		} else {
			cfg.Scale = s
		}
	}
	if v := os.Getenv("STYLE_POINT_BUDGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("[CONFIG] Ignoring STYLE_POINT_BUDGET=%q: must be a non-negative integer", v)
		} else {
			cfg.PointBudget = n
		}
	}
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parsePoint parses "x,y".
func parsePoint(s string) (stroke.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return stroke.Point{}, fmt.Errorf("want x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return stroke.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return stroke.Point{}, fmt.Errorf("y: %w", err)
	}
	return stroke.Point{X: x, Y: y}, nil
}
