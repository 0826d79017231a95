package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arxflow/floorplan/pkg/export"
	"github.com/arxflow/floorplan/pkg/floorplan"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floorplangen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	cfg, err := floorplan.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *verbose {
		fmt.Printf("Footprint: %.0fx%.0f ft, %d room(s), feel=%s\n",
			cfg.Footprint.Width, cfg.Footprint.Depth, len(cfg.Rooms), cfg.Feel)
		fmt.Printf("Config hash: %x\n", cfg.Hash())
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Synthesizing floor plan...")
	}

	art, err := floorplan.Synthesize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Synthesis completed in %v\n", elapsed)
		printStats(art)
	}

	baseName := fmt.Sprintf("floorplan_%x", cfg.Hash()[:4])

	if *format == "json" || *format == "all" {
		if err := exportJSON(art, baseName); err != nil {
			return err
		}
	}

	if *format == "svg" || *format == "all" {
		if err := exportSVG(art, baseName, cfg); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully synthesized floor plan (%d rooms) in %v\n", len(art.Rooms), elapsed)
	return nil
}

func exportJSON(art *floorplan.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(art, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func exportSVG(art *floorplan.Artifact, baseName string, cfg *floorplan.Config) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Floor Plan (%.0fx%.0f ft)", cfg.Footprint.Width, cfg.Footprint.Depth)

	if err := export.SaveSVGToFile(art, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func printStats(art *floorplan.Artifact) {
	fmt.Println("\nFloor Plan Statistics:")
	fmt.Printf("  Rooms: %d\n", len(art.Rooms))
	fmt.Printf("  Hallway segments: %d\n", len(art.HallwayNetwork.Segments))
	fmt.Printf("  Junctions: %d\n", len(art.HallwayNetwork.Junctions))
	fmt.Printf("  Bedroom clusters: %d\n", len(art.BedroomClusters))
	fmt.Printf("  Traffic paths: %d\n", len(art.TrafficPaths))
	fmt.Printf("  Reachability: %s\n", reachabilityStatus(art.Reachability.AllReachable))
	if len(art.Warnings) > 0 {
		fmt.Printf("  Warnings: %d\n", len(art.Warnings))
		for _, w := range art.Warnings {
			fmt.Printf("    - %s\n", w)
		}
	}
}

func reachabilityStatus(allReachable bool) string {
	if allReachable {
		return "PASSED"
	}
	return "FAILED"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: floorplangen -config <config.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'floorplangen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("floorplangen version %s\n\n", version)
	fmt.Println("A command-line tool for synthesizing circulation-first residential floor plans.")
	fmt.Println("\nUsage:")
	fmt.Println("  floorplangen -config <config.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Synthesize a floor plan with default JSON export")
	fmt.Println("  floorplangen -config house.yaml")
	fmt.Println("\n  # Synthesize with both export formats and verbose output")
	fmt.Println("  floorplangen -config house.yaml -format all -verbose -output ./out")
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies the building footprint, story")
	fmt.Println("  count, qualitative feel (cozy, comfortable, spacious), entry room, and")
	fmt.Println("  the room program: each room's name, type, target area, and position")
	fmt.Println("  (absolute, relative to an earlier room, or auto-placed).")
}
