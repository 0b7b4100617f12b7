// bmp package implements a bitmap reader for uncompressed 1, 8 and 24 bit BMPs
package bmp

import (
	"fmt"
	"io"
	"os"
)

type Bitmap struct {
	Filename string
	Header   Header
	Palette  Palette
	Pixels   *Samples
}

// Decode parses and validates the header at the current position of rs,
// reads the palette and buffers the pixel data. Nothing is read past the
// header when validation fails.
func Decode(rs io.ReadSeeker) (*Bitmap, error) {
	h, err := ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	if err := Validate(h); err != nil {
		return nil, err
	}

	palette, err := ReadPalette(h, rs)
	if err != nil {
		return nil, err
	}

	pixels, err := NewSamples(h, palette, rs)
	if err != nil {
		return nil, err
	}

	return &Bitmap{Header: h, Palette: palette, Pixels: pixels}, nil
}

// Reads a Bitmap file
func ReadBitmap(filename string) (*Bitmap, error) {
	// Open the file
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	// Pixel data is fully buffered by Decode, so the file can go right away.
	defer file.Close()

	b, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	b.Filename = filename
	return b, nil
}
