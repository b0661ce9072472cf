package imageio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	bmpFileHeaderSize = 14
	bmpInfoHeaderSize = 40
	bmpBitsPerPixel   = 32
)

// WriteBMP writes the framebuffer as an uncompressed 32-bpp BMP: a "BM" file
// header, a BITMAPINFOHEADER, then bottom-up rows of B,G,R,0xFF pixels. At
// 32 bits per pixel every row is already 4-byte aligned, so there is no
// padding.
func WriteBMP(w io.Writer, fb *Framebuffer) error {
	bw := bufio.NewWriter(w)

	imageSize := uint32(4 * fb.Width * fb.Height)
	fileSize := uint32(bmpFileHeaderSize+bmpInfoHeaderSize) + imageSize

	header := make([]byte, bmpFileHeaderSize+bmpInfoHeaderSize)
	header[0], header[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(header[2:], fileSize)
	binary.LittleEndian.PutUint32(header[10:], bmpFileHeaderSize+bmpInfoHeaderSize)

	binary.LittleEndian.PutUint32(header[14:], bmpInfoHeaderSize)
	binary.LittleEndian.PutUint32(header[18:], uint32(fb.Width))
	binary.LittleEndian.PutUint32(header[22:], uint32(fb.Height))
	binary.LittleEndian.PutUint16(header[26:], 1) // planes
	binary.LittleEndian.PutUint16(header[28:], bmpBitsPerPixel)
	binary.LittleEndian.PutUint32(header[34:], imageSize)

	if _, err := bw.Write(header); err != nil {
		return err
	}

	pixel := [4]byte{}
	for y := fb.Height - 1; y >= 0; y-- {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			pixel[0], pixel[1], pixel[2], pixel[3] = b, g, r, 0xFF
			if _, err := bw.Write(pixel[:]); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// SaveBMP writes the framebuffer to a BMP file
func SaveBMP(path string, fb *Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteBMP(file, fb); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return file.Close()
}
