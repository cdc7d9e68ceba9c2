package renderer

import (
	"runtime"
	"time"

	"github.com/Hexumicx/raytracing/types"
)

// A factory for the random source owned by a single worker.
type SamplerFactory func(worker int) types.Sampler

type Options struct {
	// Number of parallel workers. Values below 1 select the number of
	// logical CPUs. The count is capped to the frame height.
	Workers int

	// Base seed for the per-worker random generators. A zero seed selects
	// a time based seed. Renders with the same seed and worker count are
	// reproducible.
	Seed uint64

	// Optional override for the per-worker random sources.
	NewSampler SamplerFactory
}

func (opts Options) workerCount(frameH int) int {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, frameH))
}

func (opts Options) samplerFactory() SamplerFactory {
	if opts.NewSampler != nil {
		return opts.NewSampler
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return func(worker int) types.Sampler {
		return types.NewSampler(seed, uint64(worker))
	}
}
