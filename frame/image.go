package frame

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Convert the buffer into a gamma corrected 8-bit RGBA image.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: ToByte(c.X()), G: ToByte(c.Y()), B: ToByte(c.Z()), A: 255})
		}
	}
	return img
}

// Scale an image by the given factor using Catmull-Rom resampling. A factor
// of 1 returns the source image.
func Resize(src image.Image, factor float64) image.Image {
	if factor == 1 || factor <= 0 {
		return src
	}

	bounds := src.Bounds()
	w := max(1, int(float64(bounds.Dx())*factor))
	h := max(1, int(float64(bounds.Dy())*factor))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
