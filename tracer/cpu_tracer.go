package tracer

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/Hexumicx/raytracing/frame"
	"github.com/Hexumicx/raytracing/log"
	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/types"
)

type cpuTracer struct {
	logger log.Logger

	wg sync.WaitGroup

	// The tracer id.
	id string

	// The random source for pixel jitter, lens and material sampling. It
	// is only ever touched by this tracer's worker.
	sampler types.Sampler

	// A channel for receiving block requests from the renderer.
	blockReqChan chan BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *Stats

	world  scene.Hittable
	camera *scene.Camera
	fb     *frame.Buffer
}

// Create a new cpu tracer that draws random numbers from sampler.
func NewCPUTracer(id string, sampler types.Sampler) Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		sampler:      sampler,
		blockReqChan: make(chan BlockRequest, 1),
		stats:        &Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Attach scene data and spawn the block worker.
func (tr *cpuTracer) Init(world scene.Hittable, camera *scene.Camera, fb *frame.Buffer) error {
	if world == nil || camera == nil || fb == nil {
		return ErrNotInitialized
	}

	tr.world = world
	tr.camera = camera
	tr.fb = fb
	tr.startWorker()
	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// Wait for ack
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
	}
	tr.wg.Wait()
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if worker is busy
		tr.logger.Error("request processor did not receive block request")
		blockReq.ErrChan <- fmt.Errorf("tracer %s: block request dropped", tr.id)
	}
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	// Worker already running
	if tr.closeChan != nil {
		return
	}

	tr.closeChan = make(chan struct{})
	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq BlockRequest
		var startTime time.Time
		var err error
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				startTime = time.Now()
				tr.logger.Debugf("rendering rows [%d, %d)", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH)

				// Render block and reply with our completion status
				err = tr.renderBlock(&blockReq)
				if err != nil {
					blockReq.ErrChan <- err
					continue
				}

				// Update stats
				tr.stats.BlockY = blockReq.BlockY
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.Samples = blockReq.BlockH * tr.fb.Width * tr.camera.SamplesPerPixel
				tr.stats.RenderTime = time.Since(startTime)
				tr.logger.Debugf("rendered %d rows in %s", blockReq.BlockH, tr.stats.RenderTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block. Panics raised while tracing are converted into errors
// wrapping ErrWorkerPanic so the worker stays alive.
func (tr *cpuTracer) renderBlock(blockReq *BlockRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			tr.logger.Errorf("panic while rendering rows [%d, %d): %v\n%s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, r, debug.Stack())
			err = fmt.Errorf("%w: tracer %s: %v", ErrWorkerPanic, tr.id, r)
		}
	}()

	if tr.world == nil {
		return ErrNotInitialized
	}

	cam := tr.camera
	width := tr.fb.Width
	rows := tr.fb.Rows(blockReq.BlockY, blockReq.BlockY+blockReq.BlockH)
	for row := 0; row < blockReq.BlockH; row++ {
		j := blockReq.BlockY + row
		for i := 0; i < width; i++ {
			var pixelColor types.Vec3
			for sample := 0; sample < cam.SamplesPerPixel; sample++ {
				r := cam.Ray(i, j, tr.sampler)
				pixelColor = pixelColor.Add(RayColor(r, cam.MaxDepth, tr.world, tr.sampler))
			}
			rows[row*width+i] = pixelColor
		}
	}

	return nil
}
