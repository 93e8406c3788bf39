package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/df07/sdl-raytracer/pkg/core"
)

// Frame is a rendered raster, stored row-major from the top-left pixel
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// ToRGBA converts the frame to an image suitable for image encoders
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.At(x, y).ToRGBA())
		}
	}
	return img
}

// WritePPM writes the frame as a plain-text (P3) PPM image:
// a header, a blank line, then one "R G B" line per pixel.
func WritePPM(w io.Writer, frame *Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d 255\n\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	for _, pixel := range frame.Pixels {
		if _, err := fmt.Fprintln(bw, pixel); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}
