package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePPM writes the framebuffer as a binary P6 PPM: the ASCII header
// "P6\n<width> <height>\n255\n" followed by the raw pixel bytes.
func WritePPM(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	if _, err := bw.Write(fb.Pix); err != nil {
		return err
	}

	return bw.Flush()
}

// SavePPM writes the framebuffer to a PPM file
func SavePPM(path string, fb *Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := WritePPM(file, fb); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return file.Close()
}
