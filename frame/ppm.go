package frame

import (
	"bufio"
	"fmt"
	"io"
)

// Write the buffer as a plain text (P3) PPM image with a max value of 255.
func WritePPM(w io.Writer, b *Buffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Width, b.Height); err != nil {
		return err
	}

	for _, c := range b.Pix {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", ToByte(c.X()), ToByte(c.Y()), ToByte(c.Z())); err != nil {
			return err
		}
	}

	return bw.Flush()
}
