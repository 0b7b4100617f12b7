package display

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	xbmp "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/anas-shakeel/bmpview/internal/utils"
)

// MaxCanvasPixels caps the surface allocated by NewCanvas.
const MaxCanvasPixels = 1 << 26

var (
	ErrOutOfBounds    = errors.New("display: pixel out of bounds")
	ErrCanvasTooLarge = errors.New("display: canvas too large")
)

// Canvas is an in-memory drawing surface. Decoded rows arrive at y = height
// down to y = 1 (and y = 0 for trailing bytes), so the surface keeps one
// extra row above the image.
type Canvas struct {
	img *image.RGBA
}

// Creates an opaque black canvas for a width x height bitmap
func NewCanvas(width, height uint32) (*Canvas, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("display: width and height must be greater than 0")
	}
	if uint64(width)*(uint64(height)+1) > MaxCanvasPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrCanvasTooLarge, width, height, MaxCanvasPixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)+1))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return &Canvas{img: img}, nil
}

func (c *Canvas) SetPixel(x, y uint32, r, g, b uint8) error {
	if uint64(x) >= uint64(c.img.Rect.Max.X) || uint64(y) >= uint64(c.img.Rect.Max.Y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	c.img.SetRGBA(int(x), int(y), color.RGBA{R: r, G: g, B: b, A: 0xff})
	return nil
}

// Image returns a copy of rows 1..height with its origin at (0, 0).
func (c *Canvas) Image() *image.RGBA {
	b := c.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()-1))
	draw.Draw(dst, dst.Bounds(), c.img, image.Pt(0, 1), draw.Src)
	return dst
}

// Print the canvas in terminal. Use for small images only
func (c *Canvas) Render(w io.Writer) error {
	img := c.Image()
	bw := bufio.NewWriter(w)
	for y := range img.Rect.Dy() {
		for x := range img.Rect.Dx() {
			p := img.RGBAAt(x, y)
			bw.WriteString(utils.ColoredBlock("  ", p.R, p.G, p.B))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Encode writes the canvas image to w as a BMP.
func (c *Canvas) Encode(w io.Writer) error {
	return xbmp.Encode(w, c.Image())
}

// Saves the canvas image onto local disk
func (c *Canvas) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(f)
	if err := c.Encode(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
