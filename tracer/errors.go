package tracer

import "errors"

var (
	ErrNotInitialized = errors.New("tracer: not initialized")
	ErrWorkerPanic    = errors.New("tracer: worker panicked")
)
