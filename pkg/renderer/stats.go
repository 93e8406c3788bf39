package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	HitPixels      int           // Pixels whose primary ray hit an object
	ShadowedPixels int           // Hit pixels occluded from the light
	LitPixels      int           // Hit pixels shaded by the light
	Duration       time.Duration // Wall time spent rendering
}

// Coverage returns the fraction of pixels whose primary ray hit an object
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// record updates the counters for one shaded pixel
func (s *RenderStats) record(result pixelResult) {
	s.TotalPixels++
	switch result {
	case pixelLit:
		s.HitPixels++
		s.LitPixels++
	case pixelShadowed:
		s.HitPixels++
		s.ShadowedPixels++
	}
}
