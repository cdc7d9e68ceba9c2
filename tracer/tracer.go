package tracer

import (
	"time"

	"github.com/Hexumicx/raytracing/frame"
	"github.com/Hexumicx/raytracing/scene"
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height.
	BlockY int
	BlockH int

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- int

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block start row and height.
	BlockY int
	BlockH int

	// The number of primary rays traced for this block.
	Samples int

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Attach the scene geometry, the initialized camera and the frame
	// buffer that receives the accumulated samples.
	Init(world scene.Hittable, camera *scene.Camera, fb *frame.Buffer) error

	// Enqueue block request. The tracer replies on exactly one of the
	// request's channels.
	Enqueue(BlockRequest)

	// Shutdown and cleanup tracer.
	Close()

	// Retrieve last block statistics.
	Stats() *Stats
}
