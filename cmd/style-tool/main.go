package main

import (
	"log"

	"StyleKit/internal/config"
	"StyleKit/internal/ui"
)

func main() {
	cfg := config.Load()
	log.Printf("Starting style tool (styles in %s)", cfg.StylePath)
	ui.RunStyleTool(cfg)
}
