package renderer

import "github.com/Hexumicx/raytracing/frame"

type Renderer interface {
	// Render frame. The returned buffer holds the per pixel sample
	// average in linear color space.
	Render() (*frame.Buffer, error)

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
