package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"retire-mcs/cmd/profilegen/generator"
)

func main() {
	preset := flag.String("preset", "all", "Preset to generate: "+strings.Join(generator.PresetNames(), ", ")+" or all")
	outDir := flag.String("out", "./profiles", "Output directory for profile files")
	count := flag.Int("count", 1, "Variants per preset (1 writes the baseline)")
	jitter := flag.Float64("jitter", 0.15, "Relative spread applied to variants")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for variant generation")
	flag.Parse()

	cfg := generator.GeneratorConfig{
		Preset: *preset,
		Count:  *count,
		Jitter: *jitter,
		Seed:   *seed,
	}

	fmt.Printf("Generating preset '%s' (Count: %d, Jitter: %.2f) to %s...\n", cfg.Preset, cfg.Count, cfg.Jitter, *outDir)

	files, err := generator.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate profiles: %v\n", err)
		os.Exit(1)
	}

	if err := generator.Save(*outDir, files); err != nil {
		fmt.Printf("Failed to save profiles: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Wrote %d profile(s).\n", len(files))
}
