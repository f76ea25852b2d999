package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      int64
	Output    string
}

func main() {
	config, help := parseFlags(os.Args[1:])
	if help {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, config, renderer.NewDefaultLogger())
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags, printing usage when -help is given
func parseFlags(args []string) (Config, bool) {
	var config Config

	fs := flag.NewFlagSet("raytracer", flag.ExitOnError)
	fs.StringVar(&config.SceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel row workers (0 = auto-detect CPU count, 1 = sequential)")
	fs.Int64Var(&config.Seed, "seed", 1, "Random seed for sampling")
	fs.StringVar(&config.Output, "output", "image.ppm", "Output file (.ppm or .png), or - for PPM on stdout")
	help := fs.Bool("help", false, "Show help information")
	_ = fs.Parse(args)

	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
	}

	return config, *help
}

// createScene builds the named scene and applies command line overrides to its camera
func createScene(config Config) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneType)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.Camera.ImageWidth = config.Width
	}
	if config.Samples > 0 {
		s.Camera.SamplesPerPixel = config.Samples
	}
	if config.MaxDepth > 0 {
		s.Camera.MaxDepth = config.MaxDepth
	}
	return s, nil
}

// run renders the configured scene and writes it to the output file
func run(ctx context.Context, config Config, logger core.Logger) error {
	format, err := output.FormatFromPath(config.Output)
	if err != nil {
		return err
	}

	s, err := createScene(config)
	if err != nil {
		return err
	}

	camera := s.Camera
	if err := camera.Initialize(); err != nil {
		return fmt.Errorf("invalid camera settings: %w", err)
	}
	width, height := camera.ImageWidth, camera.ImageHeight()
	logger.Printf("Rendering scene %q at %dx%d, %d samples per pixel, max depth %d",
		s.Name, width, height, camera.SamplesPerPixel, camera.MaxDepth)

	camera.Logger = logger
	startTime := time.Now()

	var pixels []color.RGBA
	if config.Workers == 1 {
		pixels, err = camera.Render(s.World, core.NewSeededSampler(config.Seed))
	} else {
		pixels, _, err = camera.RenderParallel(ctx, s.World, renderer.ParallelOptions{
			Workers: config.Workers,
			Seed:    config.Seed,
		})
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed in %v", time.Since(startTime))

	if config.Output == "-" {
		return output.Write(os.Stdout, format, width, height, pixels)
	}

	if dir := filepath.Dir(config.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(config.Output)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := output.Write(file, format, width, height, pixels); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}

	logger.Printf("Render saved as %s", config.Output)
	return nil
}
