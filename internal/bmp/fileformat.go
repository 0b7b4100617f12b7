// BMP-specific structs and types
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40

	// HeaderLen is the size of the packed file + info header on disk.
	HeaderLen = fileHeaderLen + infoHeaderLen

	// Signature is the file type tag "BM" read as a little-endian uint16.
	Signature = 0x4d42
)

// The FileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Signature   uint16 // The file type: must be 0x4d42 (ASCII string "BM").
	FileSize    uint32 // The size, in bytes, of the bitmap file.
	Reserved1   uint16 // Reserved; must be zero.
	Reserved2   uint16 // Reserved; must be zero.
	PixelOffset uint32 // Offset (In bytes) from the file start to the pixel array
}

// The InfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].
type InfoHeader struct {
	HeaderSize      uint32 // The number of bytes required by the structure.
	Width           uint32 // The width of the bitmap, in pixels.
	Height          uint32 // The height of the bitmap, in pixels (rows, bottom-up)
	Planes          uint16 // The number of planes for the target device.
	BitDepth        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	ImageSize       uint32 // The size of the image (in bytes).
	XPixelsPerM     uint32 // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     uint32 // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Header is the packed file header immediately followed by the info header.
// It is decoded once per file and passed around by value.
type Header struct {
	FileHeader
	InfoHeader
}

// ReadHeader reads the fixed 54-byte header from the current position of r.
// It is a purely structural read; see Validate for the semantic checks.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, ErrTruncatedHeader
		}
		return Header{}, fmt.Errorf("bmp: reading header: %w", err)
	}
	return h, nil
}

// Validate reports whether h describes a bitmap this package can decode.
func Validate(h Header) error {
	if h.Signature != Signature {
		return UnsupportedError(fmt.Sprintf("bad signature %#04x", h.Signature))
	}
	if _, err := h.Format(); err != nil {
		return err
	}
	if h.Compression != 0 {
		return UnsupportedError(fmt.Sprintf("compression %d", h.Compression))
	}
	if h.PixelOffset > h.FileSize {
		return UnsupportedError(fmt.Sprintf("pixel offset %d beyond file size %d", h.PixelOffset, h.FileSize))
	}
	if h.Width == 0 {
		return UnsupportedError("zero width")
	}
	if h.Height == 0 {
		return UnsupportedError("zero height")
	}
	// A negative height marks a top-down bitmap.
	if int32(h.Height) < 0 {
		return UnsupportedError("top-down bitmap")
	}
	return nil
}

// Format maps the header's bit depth onto a PixelFormat.
func (h Header) Format() (PixelFormat, error) {
	switch h.BitDepth {
	case 1:
		return Depth1, nil
	case 8:
		return Depth8, nil
	case 24:
		return Depth24, nil
	}
	return 0, UnsupportedError(fmt.Sprintf("%d-bit depth", h.BitDepth))
}

// Print the header fields in human-readable format
func (h Header) PrintInfo(w io.Writer) {
	fmt.Fprintf(w, "Header size: \t%v bytes\n\n", HeaderLen)

	fmt.Fprintf(w, "Signature: \t%#x\n", h.Signature)
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", h.FileSize)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n\n", h.PixelOffset)

	fmt.Fprintf(w, "InfoSize: \t%v bytes\n", h.HeaderSize)
	fmt.Fprintf(w, "Width: \t\t%v px\n", h.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", h.Height)
	fmt.Fprintf(w, "Planes: \t%v\n", h.Planes)
	fmt.Fprintf(w, "BitDepth: \t%v bits\n", h.BitDepth)
	fmt.Fprintf(w, "Compression: \t%v\n", h.Compression)
	fmt.Fprintf(w, "ImageSize: \t%v bytes\n", h.ImageSize)
	fmt.Fprintf(w, "XPixelsPerM: \t%v\n", h.XPixelsPerM)
	fmt.Fprintf(w, "YPixelsPerM: \t%v\n", h.YPixelsPerM)
	fmt.Fprintf(w, "ColorsUsed: \t%v\n", h.ColorsUsed)
	fmt.Fprintf(w, "Important: \t%v\n", h.ColorsImportant)
}
