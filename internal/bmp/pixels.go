package bmp

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// Short reads of up to this many bytes are accepted as trailing row padding.
const pixelSlack = 2

// PixelFormat selects how pixel bytes are unpacked.
type PixelFormat uint8

const (
	Depth1 PixelFormat = iota + 1
	Depth8
	Depth24
)

// bits per pixel unit
func (f PixelFormat) bits() int {
	switch f {
	case Depth1:
		return 1
	case Depth8:
		return 8
	case Depth24:
		return 24
	}
	return 0
}

func (f PixelFormat) paletteLen() int {
	if f == Depth24 {
		return 0
	}
	return 1 << f.bits()
}

func (f PixelFormat) String() string {
	if f.bits() == 0 {
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
	return fmt.Sprintf("%d-bit", f.bits())
}

// Sample is one decoded pixel at its destination coordinates.
type Sample struct {
	X, Y uint32
	RGB
}

// Samples is a single forward pass over the decoded pixels of a bitmap.
// Use it like bufio.Scanner:
//
//	for s.Next() {
//		px := s.Sample()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Samples struct {
	format  PixelFormat
	width   uint32
	palette Palette
	buf     []byte

	units int // decodable pixel units in buf
	next  int
	x, y  uint32
	done  bool // the row at y=0 has been completed

	cur Sample
	err error
}

// NewSamples seeks rs to the pixel array, buffers the pixel bytes and returns
// an iterator over them. The run of bytes is flat: rows are not realigned to
// a 4-byte stride.
func NewSamples(h Header, p Palette, rs io.ReadSeeker) (*Samples, error) {
	format, err := h.Format()
	if err != nil {
		return nil, err
	}
	if _, err := rs.Seek(int64(h.PixelOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: pixel data at %d: %w", ErrSeekFailed, h.PixelOffset, err)
	}

	want := int64(pixelDataLen(h))
	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(rs, want))
	if err != nil {
		return nil, fmt.Errorf("bmp: reading pixel data: %w", err)
	}
	if want-n > pixelSlack {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedPixelData, n, want)
	}

	return &Samples{
		format:  format,
		width:   h.Width,
		palette: p,
		buf:     buf.Bytes(),
		units:   int(n) * 8 / format.bits(),
		y:       h.Height,
	}, nil
}

// pixelDataLen is ImageSize bounded by the bytes the header says follow
// PixelOffset. A zero ImageSize means the whole remainder.
func pixelDataLen(h Header) uint32 {
	if h.PixelOffset > h.FileSize {
		return 0
	}
	avail := h.FileSize - h.PixelOffset
	if h.ImageSize == 0 || h.ImageSize > avail {
		return avail
	}
	return h.ImageSize
}

// Next decodes the next pixel. It returns false once the pixel data is
// exhausted or a decode error occurs.
func (s *Samples) Next() bool {
	if s.err != nil || s.done || s.next >= s.units {
		return false
	}

	var c RGB
	switch i := s.next; s.format {
	case Depth24:
		c = RGB{R: s.buf[3*i+2], G: s.buf[3*i+1], B: s.buf[3*i]}
	case Depth8:
		c, s.err = s.palette.Lookup(int(s.buf[i]))
	case Depth1:
		c, s.err = s.palette.Lookup(int(s.buf[i/8]>>(i%8)) & 1)
	default:
		s.err = UnsupportedError(s.format.String())
	}
	if s.err != nil {
		return false
	}

	s.cur = Sample{X: s.x, Y: s.y, RGB: c}
	s.next++
	s.x++
	if s.x >= s.width {
		s.x = 0
		if s.y == 0 {
			s.done = true
		} else {
			s.y--
		}
	}
	return true
}

// Sample returns the pixel decoded by the last call to Next.
func (s *Samples) Sample() Sample {
	return s.cur
}

// Err returns the first decode error, if any.
func (s *Samples) Err() error {
	return s.err
}

// All returns an iterator over the remaining samples. Check Err once the
// loop is done.
func (s *Samples) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for s.Next() {
			if !yield(s.Sample()) {
				return
			}
		}
	}
}
