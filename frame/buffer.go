package frame

import (
	"fmt"
	"math"

	"github.com/Hexumicx/raytracing/types"
)

// Buffer holds the linear radiance estimate for every pixel of a frame in
// row-major order.
type Buffer struct {
	Width  int
	Height int
	Pix    []types.Vec3
}

// Allocate a zeroed buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]types.Vec3, width*height),
	}
}

// Get the pixel slice that covers rows [y0, y1). Writes through the
// returned slice never touch any other row.
func (b *Buffer) Rows(y0, y1 int) []types.Vec3 {
	if y0 < 0 || y1 > b.Height || y0 > y1 {
		panic(fmt.Sprintf("frame: invalid row range [%d, %d) for height %d", y0, y1, b.Height))
	}
	return b.Pix[y0*b.Width : y1*b.Width : y1*b.Width]
}

// Get the pixel at column x and row y.
func (b *Buffer) At(x, y int) types.Vec3 {
	return b.Pix[y*b.Width+x]
}

// Set the pixel at column x and row y.
func (b *Buffer) Set(x, y int, c types.Vec3) {
	b.Pix[y*b.Width+x] = c
}

// Multiply every pixel by s.
func (b *Buffer) Scale(s float64) {
	for idx, c := range b.Pix {
		b.Pix[idx] = c.Mul(s)
	}
}

var displayRange = types.Interval{Min: 0.000, Max: 0.999}

// Convert a linear color component to its 8-bit display value using a
// gamma 2 transfer curve.
func ToByte(c float64) uint8 {
	if c > 0 {
		c = math.Sqrt(c)
	} else {
		// Negative and NaN components display as black.
		c = 0
	}
	return uint8(256 * displayRange.Clamp(c))
}
