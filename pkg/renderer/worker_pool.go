package renderer

import (
	"context"
	"image/color"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// ParallelOptions configures RenderParallel
type ParallelOptions struct {
	Workers int   // Rows rendered concurrently; <= 0 uses runtime.NumCPU()
	Seed    int64 // Base seed; row j samples from Seed+j

	// NewSampler overrides the per-row sampler when set
	NewSampler func(row int) core.Sampler
}

func (o ParallelOptions) rowSampler(row int) core.Sampler {
	if o.NewSampler != nil {
		return o.NewSampler(row)
	}
	return core.NewSeededSampler(o.Seed + int64(row))
}

// RenderParallel renders rows concurrently. The scene and materials are
// only read, and each row owns its sampler and its slice of the output, so
// the result depends on the row samplers but not on the number of workers.
func (c *Camera) RenderParallel(ctx context.Context, world geometry.Hittable, opts ParallelOptions) ([]color.RGBA, RenderStats, error) {
	if err := c.Initialize(); err != nil {
		return nil, RenderStats{}, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	width, height := c.ImageWidth, c.imageHeight
	pixels := make([]color.RGBA, width*height)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for j := 0; j < height; j++ {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sampler := opts.rowSampler(j)
			row := pixels[j*width : (j+1)*width]
			for i := range row {
				row[i] = c.renderPixel(i, j, world, sampler)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * c.SamplesPerPixel,
		SamplesPerPixel: c.SamplesPerPixel,
		Rows:            height,
		Workers:         workers,
		Duration:        time.Since(startTime),
	}
	c.logf("Rendered %dx%d with %d workers in %v (%.0f samples/s)",
		width, height, workers, stats.Duration, stats.SamplesPerSecond())

	return pixels, stats, nil
}
