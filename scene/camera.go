package scene

import (
	"fmt"
	"math"

	"github.com/Hexumicx/raytracing/types"
)

// Frame holds the camera state derived from its configuration. It is
// computed once per render by Init and is read-only afterwards.
type Frame struct {
	// Rendered image height in pixels.
	ImageHeight int

	// Color scale factor for a sum of pixel samples.
	PixelSamplesScale float64

	// Camera center and the orthonormal camera basis.
	Center  types.Vec3
	U, V, W types.Vec3

	// Location of pixel 0,0 and the offsets to the pixels on its right
	// and below it.
	Pixel00     types.Vec3
	PixelDeltaU types.Vec3
	PixelDeltaV types.Vec3

	// Defocus disk horizontal and vertical radius.
	DefocusDiskU types.Vec3
	DefocusDiskV types.Vec3
}

// The Camera type holds the viewing configuration and generates primary
// rays. Configuration fields must not be modified while rendering.
type Camera struct {
	// Ratio of image width over height.
	AspectRatio float64

	// Rendered image width in pixels.
	ImageWidth int

	// Count of random samples for each pixel.
	SamplesPerPixel int

	// Maximum number of ray bounces into the scene.
	MaxDepth int

	// Vertical view angle in degrees.
	VFov float64

	// Point the camera looks from, point it looks at and the camera
	// relative "up" direction.
	LookFrom types.Vec3
	LookAt   types.Vec3
	VUp      types.Vec3

	// Variation angle of rays through each pixel and the distance from
	// the camera to the plane of perfect focus.
	DefocusAngle float64
	FocusDist    float64

	Frame
}

// Create a camera with the default configuration.
func NewCamera() *Camera {
	return &Camera{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        types.XYZ(0, 0, 0),
		LookAt:          types.XYZ(0, 0, -1),
		VUp:             types.XYZ(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// Get the image height that corresponds to the configured width and aspect
// ratio. The height is at least 1.
func (c *Camera) ImageHeightFor() int {
	h := int(float64(c.ImageWidth) / c.AspectRatio)
	if h < 1 {
		h = 1
	}
	return h
}

// Check the configuration for values that would produce a degenerate frame.
func (c *Camera) Validate() error {
	switch {
	case c.ImageWidth < 1:
		return fmt.Errorf("%w; got %d", ErrInvalidImageWidth, c.ImageWidth)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w; got %v", ErrInvalidAspectRatio, c.AspectRatio)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w; got %d", ErrInvalidSamples, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w; got %d", ErrInvalidMaxDepth, c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w; got %v", ErrInvalidFOV, c.VFov)
	case !(c.FocusDist > 0) || math.IsInf(c.FocusDist, 0):
		return fmt.Errorf("%w; got %v", ErrInvalidFocusDist, c.FocusDist)
	case c.DefocusAngle >= 180 || math.IsNaN(c.DefocusAngle):
		return fmt.Errorf("%w; got %v", ErrInvalidDefocus, c.DefocusAngle)
	}

	viewDir := c.LookFrom.Sub(c.LookAt)
	if viewDir.NearZero() {
		return fmt.Errorf("%w: look-from and look-at points coincide", ErrDegenerateView)
	}
	if c.VUp.Cross(viewDir).NearZero() {
		return fmt.Errorf("%w: up vector is parallel to the view direction", ErrDegenerateView)
	}

	return nil
}

// Derive the camera frame from the current configuration.
func (c *Camera) Init() {
	c.ImageHeight = c.ImageHeightFor()
	c.PixelSamplesScale = 1.0 / float64(c.SamplesPerPixel)
	c.Center = c.LookFrom

	// Viewport dimensions
	theta := types.DegToRad(c.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * float64(c.ImageWidth) / float64(c.ImageHeight)

	// Camera basis
	c.W = c.LookFrom.Sub(c.LookAt).Normalize()
	c.U = c.VUp.Cross(c.W).Normalize()
	c.V = c.W.Cross(c.U)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.U.Mul(viewportWidth)
	viewportV := c.V.Neg().Mul(viewportHeight)

	c.PixelDeltaU = viewportU.Div(float64(c.ImageWidth))
	c.PixelDeltaV = viewportV.Div(float64(c.ImageHeight))

	viewportUpperLeft := c.Center.
		Sub(c.W.Mul(c.FocusDist)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	c.Pixel00 = viewportUpperLeft.Add(c.PixelDeltaU.Add(c.PixelDeltaV).Mul(0.5))

	defocusRadius := c.FocusDist * math.Tan(types.DegToRad(c.DefocusAngle)/2)
	c.DefocusDiskU = c.U.Mul(defocusRadius)
	c.DefocusDiskV = c.V.Mul(defocusRadius)
}

// Generate a ray originating from the defocus disk and directed at a
// randomly sampled point around pixel (i, j). Init must be called first.
func (c *Camera) Ray(i, j int, s types.Sampler) types.Ray {
	offsetX := s.Float64() - 0.5
	offsetY := s.Float64() - 0.5
	pixelSample := c.Pixel00.
		Add(c.PixelDeltaU.Mul(float64(i) + offsetX)).
		Add(c.PixelDeltaV.Mul(float64(j) + offsetY))

	origin := c.Center
	if c.DefocusAngle > 0 {
		origin = c.defocusDiskSample(s)
	}

	return types.Ray{
		Origin: origin,
		Dir:    pixelSample.Sub(origin),
	}
}

// Get a random point in the camera defocus disk.
func (c *Camera) defocusDiskSample(s types.Sampler) types.Vec3 {
	p := types.RandomInUnitDisk(s)
	return c.Center.Add(c.DefocusDiskU.Mul(p[0])).Add(c.DefocusDiskV.Mul(p[1]))
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\n  image    : %d x %d (aspect %3.3f)\n  samples  : %d (max depth %d)\n  from     : (%3.3f, %3.3f, %3.3f)\n  at       : (%3.3f, %3.3f, %3.3f)\n  vfov     : %3.1f\n  defocus  : %3.2f deg @ %3.3f",
		c.ImageWidth, c.ImageHeightFor(), c.AspectRatio,
		c.SamplesPerPixel, c.MaxDepth,
		c.LookFrom[0], c.LookFrom[1], c.LookFrom[2],
		c.LookAt[0], c.LookAt[1], c.LookAt[2],
		c.VFov,
		c.DefocusAngle, c.FocusDist,
	)
}
