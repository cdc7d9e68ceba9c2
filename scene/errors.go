package scene

import "errors"

var (
	ErrInvalidImageWidth  = errors.New("camera: image width must be at least 1")
	ErrInvalidAspectRatio = errors.New("camera: aspect ratio must be a positive finite number")
	ErrInvalidSamples     = errors.New("camera: samples per pixel must be at least 1")
	ErrInvalidMaxDepth    = errors.New("camera: max depth must not be negative")
	ErrInvalidFOV         = errors.New("camera: vertical fov must be in (0, 180) degrees")
	ErrInvalidFocusDist   = errors.New("camera: focus distance must be positive")
	ErrInvalidDefocus     = errors.New("camera: defocus angle must be below 180 degrees")
	ErrDegenerateView     = errors.New("camera: degenerate view basis")
)
