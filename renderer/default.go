package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hexumicx/raytracing/frame"
	"github.com/Hexumicx/raytracing/log"
	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/tracer"
)

// A renderer that splits the frame into row blocks and traces each block on
// its own cpu tracer.
type defaultRenderer struct {
	logger log.Logger

	// The scene being rendered.
	scene *scene.Scene

	// The list of attached tracers, one per block.
	tracers []tracer.Tracer

	// The block scheduler and the last block assignment.
	scheduler        tracer.BlockScheduler
	blockAssignments []int

	// The frame buffer shared by all tracers. Tracers only write to
	// the rows of their assigned block.
	frameBuffer *frame.Buffer

	// Render statistics
	stats FrameStats
}

// Create a new renderer for the specified scene. The scene camera is
// validated and initialized before any tracer is attached.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil || sc.World == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}

	cam := sc.Camera
	if err := cam.Validate(); err != nil {
		return nil, err
	}
	cam.Init()

	r := &defaultRenderer{
		logger:      log.New("renderer"),
		scene:       sc,
		scheduler:   scheduler,
		frameBuffer: frame.NewBuffer(cam.ImageWidth, cam.ImageHeight),
	}

	newSampler := opts.samplerFactory()
	numTracers := opts.workerCount(cam.ImageHeight)
	r.tracers = make([]tracer.Tracer, numTracers)
	for idx := range r.tracers {
		tr := tracer.NewCPUTracer(fmt.Sprintf("cpu-%02d", idx), newSampler(idx))
		if err := tr.Init(sc.World, cam, r.frameBuffer); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers[idx] = tr
	}

	r.logger.Infof("attached %d tracers for a %d x %d frame", numTracers, cam.ImageWidth, cam.ImageHeight)
	return r, nil
}

// Render frame.
func (r *defaultRenderer) Render() (*frame.Buffer, error) {
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	start := time.Now()
	cam := r.scene.Camera
	r.blockAssignments = r.scheduler.Schedule(len(r.tracers), cam.ImageHeight)
	blockReqs := tracer.BlockRequests(r.blockAssignments)

	doneChan := make(chan int, len(r.tracers))
	errChan := make(chan error, len(r.tracers))
	for idx, tr := range r.tracers {
		blockReq := blockReqs[idx]
		blockReq.DoneChan = doneChan
		blockReq.ErrChan = errChan
		r.logger.Debugf("tracer %s: rows [%d, %d)", tr.Id(), blockReq.BlockY, blockReq.BlockY+blockReq.BlockH)
		tr.Enqueue(blockReq)
	}

	// Wait for all tracers to finish
	var errs []error
	pending := len(r.tracers)
	for pending > 0 {
		select {
		case rows := <-doneChan:
			r.logger.Debugf("%d rows completed", rows)
		case err := <-errChan:
			errs = append(errs, err)
		}
		pending--
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	r.frameBuffer.Scale(cam.PixelSamplesScale)
	r.updateStats(time.Since(start))
	r.logger.Infof("rendered frame in %s", r.stats.RenderTime)

	return r.frameBuffer, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		if tr != nil {
			tr.Close()
		}
	}
	r.tracers = nil
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

func (r *defaultRenderer) updateStats(renderTime time.Duration) {
	fb := r.frameBuffer
	r.stats = FrameStats{
		FrameW:     fb.Width,
		FrameH:     fb.Height,
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	for idx, tr := range r.tracers {
		trStats := tr.Stats()
		r.stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			BlockY:       trStats.BlockY,
			BlockH:       trStats.BlockH,
			FramePercent: 100 * float32(trStats.BlockH) / float32(fb.Height),
			Samples:      trStats.Samples,
			RenderTime:   trStats.RenderTime,
		}
	}
}

// Render the scene once using the even block scheduler and return the
// averaged frame buffer together with the render statistics.
func Render(sc *scene.Scene, opts Options) (*frame.Buffer, FrameStats, error) {
	r, err := NewDefault(sc, tracer.NewEvenScheduler(), opts)
	if err != nil {
		return nil, FrameStats{}, err
	}
	defer r.Close()

	fb, err := r.Render()
	if err != nil {
		return nil, FrameStats{}, err
	}
	return fb, r.Stats(), nil
}
