package main

import (
	"log"

	"StyleKit/internal/config"
	"StyleKit/internal/ui"
)

func main() {
	cfg := config.Load()
	log.Printf("Starting stroke capture (styles in %s)", cfg.StylePath)
	ui.RunCapture(cfg)
}
