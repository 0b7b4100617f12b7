package bmp

import "errors"

var (
	ErrTruncatedHeader        = errors.New("bmp: truncated header")
	ErrUnsupportedFormat      = errors.New("bmp: unsupported format")
	ErrTruncatedPalette       = errors.New("bmp: truncated palette")
	ErrSeekFailed             = errors.New("bmp: seek failed")
	ErrTruncatedPixelData     = errors.New("bmp: truncated pixel data")
	ErrPaletteIndexOutOfRange = errors.New("bmp: palette index out of range")
)

// UnsupportedError reports a structurally complete header that describes a
// bitmap this package cannot decode. It matches ErrUnsupportedFormat.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "bmp: unsupported format: " + string(e) }

func (e UnsupportedError) Is(target error) bool { return target == ErrUnsupportedFormat }
