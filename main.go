package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/sdl-raytracer/pkg/renderer"
	"github.com/df07/sdl-raytracer/pkg/scene"
	"github.com/df07/sdl-raytracer/pkg/sdl"
)

// Config holds the parsed command line
type Config struct {
	SceneType     string
	Output        string
	Format        string
	ShadowEpsilon float64
	ScenesDir     string
	List          bool
	Dump          bool
	Help          bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	if config.List {
		if err := listScenes(os.Stdout, config.ScenesDir); err != nil {
			log.Printf("Error listing scenes: %v", err)
			os.Exit(1)
		}
		return
	}

	if config.Dump {
		if err := dumpScene(os.Stdout, config.SceneType); err != nil {
			log.Printf("Error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(config); err != nil {
		log.Printf("Error: %v", err)
		var syntaxErr *sdl.SyntaxError
		var schemaErr *sdl.SchemaError
		var rangeErr *sdl.RangeError
		switch {
		case errors.As(err, &syntaxErr):
			log.Printf("The scene file is not valid SDL")
		case errors.As(err, &schemaErr), errors.As(err, &rangeErr):
			log.Printf("The scene file does not describe a valid scene")
		}
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "example", "Built-in scene name or path to an .sdl file")
	flag.StringVar(&config.Output, "output", "-", "Output file ('-' for stdout)")
	flag.StringVar(&config.Format, "format", "", "Output format: 'ppm' or 'png' (default: from output extension, else ppm)")
	flag.Float64Var(&config.ShadowEpsilon, "shadow-epsilon", renderer.DefaultRenderConfig().ShadowEpsilon, "Offset of shadow ray origins toward the light")
	flag.StringVar(&config.ScenesDir, "scenes-dir", "scenes", "Directory searched by -list")
	flag.BoolVar(&config.List, "list", false, "List available scenes")
	flag.BoolVar(&config.Dump, "dump", false, "Print the parsed -scene SDL file in normalized form instead of rendering")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("SDL Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Scene files use the SDL format; see scenes/*.sdl for examples.")
}

func listScenes(w io.Writer, scenesDir string) error {
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Fprintf(w, "%-20s %s\n", info.ID, info.Description)
	}

	sdlScenes, err := scene.ListSDLScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range sdlScenes {
		fmt.Fprintf(w, "%-20s %s: %s\n", info.FilePath, info.Name, info.Description)
	}
	return nil
}

// dumpScene parses an SDL file and writes it back in normalized form
func dumpScene(w io.Writer, filename string) error {
	root, err := sdl.LoadSDL(filename)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, root)
	return err
}

// createScene resolves a built-in scene name or loads an SDL file
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}
	if s, ok := scene.NewBuiltinScene(sceneType); ok {
		return s, nil
	}
	if strings.HasSuffix(strings.ToLower(sceneType), ".sdl") {
		return scene.Load(sceneType)
	}
	return nil, fmt.Errorf("unknown scene %q: not a built-in scene or .sdl file", sceneType)
}

// outputFormat picks the encoder from the -format flag or the output extension
func outputFormat(format, output string) (string, error) {
	if format == "" {
		if strings.EqualFold(filepath.Ext(output), ".png") {
			return "png", nil
		}
		return "ppm", nil
	}

	format = strings.ToLower(format)
	switch format {
	case "ppm", "png":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected ppm or png)", format)
	}
}

func run(config Config) error {
	format, err := outputFormat(config.Format, config.Output)
	if err != nil {
		return err
	}

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	log.Printf("Using scene %s", config.SceneType)

	raytracer := renderer.NewRaytracer(selectedScene, renderer.NewDefaultLogger())
	raytracer.SetRenderConfig(renderer.RenderConfig{ShadowEpsilon: config.ShadowEpsilon})
	frame, _ := raytracer.Render()

	var out io.Writer = os.Stdout
	if config.Output != "" && config.Output != "-" {
		file, err := os.Create(config.Output)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := writeFrame(out, frame, format); err != nil {
		return err
	}

	if out != os.Stdout {
		log.Printf("Render saved as %s", config.Output)
	}
	return nil
}

func writeFrame(w io.Writer, frame *renderer.Frame, format string) error {
	switch format {
	case "png":
		if err := png.Encode(w, frame.ToRGBA()); err != nil {
			return fmt.Errorf("error saving PNG: %w", err)
		}
		return nil
	default:
		return renderer.WritePPM(w, frame)
	}
}
