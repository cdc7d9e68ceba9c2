package renderer

import (
	"errors"

	"github.com/Hexumicx/raytracing/tracer"
)

var (
	ErrNoTracers        = errors.New("renderer: no tracers attached")
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrWorkerPanic      = tracer.ErrWorkerPanic
)
