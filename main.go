package main

import (
	"flag"
	"log"
	"os"

	"ImageMasker/internal/config"
	"ImageMasker/internal/ui"
)

func main() {
	cfg := config.Default()
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting image masker (preview height %d, brush %d)", cfg.PreviewHeight, cfg.BrushWidth)
	if err := ui.RunApp(cfg); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
