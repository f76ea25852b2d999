package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for each pixel
	Rows            int           // Number of image rows rendered
	Workers         int           // Number of rows rendered concurrently
	Duration        time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput, or 0 for an instant render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
