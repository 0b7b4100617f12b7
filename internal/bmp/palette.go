package bmp

import (
	"errors"
	"fmt"
	"io"
)

type RGB struct {
	R, G, B uint8
}

// Palette is the color table of a bitmap with bit depth 8 or less.
type Palette []RGB

// Lookup returns the color at index i.
func (p Palette) Lookup(i int) (RGB, error) {
	if i < 0 || i >= len(p) {
		return RGB{}, fmt.Errorf("%w: index %d, %d entries", ErrPaletteIndexOutOfRange, i, len(p))
	}
	return p[i], nil
}

// ReadPalette reads the color table that follows the info header. The table
// always holds 2^BitDepth entries; ColorsUsed is treated as a hint only.
// A 24-bit header yields an empty palette without touching rs.
func ReadPalette(h Header, rs io.ReadSeeker) (Palette, error) {
	format, err := h.Format()
	if err != nil {
		return nil, err
	}
	entries := format.paletteLen()
	if entries == 0 {
		return Palette{}, nil
	}

	offset := int64(fileHeaderLen) + int64(h.HeaderSize)
	if h.HeaderSize < infoHeaderLen {
		offset = HeaderLen
	}
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: palette at %d: %w", ErrSeekFailed, offset, err)
	}

	// Each entry is stored as B, G, R and one padding byte.
	b := make([]byte, entries*4)
	if _, err := io.ReadFull(rs, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedPalette
		}
		return nil, fmt.Errorf("bmp: reading palette: %w", err)
	}

	palette := make(Palette, entries)
	for i := range palette {
		palette[i] = RGB{R: b[4*i+2], G: b[4*i+1], B: b[4*i]}
	}
	return palette, nil
}
