package display

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

func TestNewCanvasLimits(t *testing.T) {
	_, err := NewCanvas(0, 4)
	assert.Error(t, err)
	_, err = NewCanvas(4, 0)
	assert.Error(t, err)
	_, err = NewCanvas(1<<16, 1<<16)
	assert.ErrorIs(t, err, ErrCanvasTooLarge)
}

func TestCanvasBounds(t *testing.T) {
	c, err := NewCanvas(3, 2)
	require.NoError(t, err)

	assert.NoError(t, c.SetPixel(0, 0, 1, 2, 3))
	assert.NoError(t, c.SetPixel(2, 2, 1, 2, 3))
	assert.ErrorIs(t, c.SetPixel(3, 1, 1, 2, 3), ErrOutOfBounds)
	assert.ErrorIs(t, c.SetPixel(0, 3, 1, 2, 3), ErrOutOfBounds)
	assert.ErrorIs(t, c.SetPixel(0xffffffff, 1, 1, 2, 3), ErrOutOfBounds)
}

func TestCanvasImageDropsSlackRow(t *testing.T) {
	src := rowMajor(3, 2)
	// One stray pixel on the slack row.
	src.samples = append(src.samples, bmp.Sample{X: 0, Y: 0, RGB: bmp.RGB{R: 99, G: 99, B: 99}})

	c, err := NewCanvas(3, 2)
	require.NoError(t, err)
	require.NoError(t, Present(src, c))

	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	for _, s := range src.samples[:6] {
		p := img.RGBAAt(int(s.X), int(s.Y)-1)
		assert.Equal(t, []uint8{s.R, s.G, s.B, 0xff}, []uint8{p.R, p.G, p.B, p.A})
	}
}

func TestCanvasEncodeRoundTrip(t *testing.T) {
	src := rowMajor(5, 3)
	c, err := NewCanvas(5, 3)
	require.NoError(t, err)
	require.NoError(t, Present(src, c))

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))

	img, err := xbmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 3), img.Bounds())

	for _, s := range src.samples {
		r, g, b, _ := img.At(int(s.X), int(s.Y)-1).RGBA()
		assert.Equal(t, []uint8{s.R, s.G, s.B}, []uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
	}
}

func TestCanvasSave(t *testing.T) {
	c, err := NewCanvas(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.SetPixel(1, 1, 255, 0, 0))

	path := filepath.Join(t.TempDir(), "out.bmp")
	require.NoError(t, c.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := xbmp.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}

func TestCanvasRender(t *testing.T) {
	c, err := NewCanvas(2, 3)
	require.NoError(t, err)
	require.NoError(t, c.SetPixel(1, 1, 10, 20, 30))

	var out strings.Builder
	require.NoError(t, c.Render(&out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "\033[48;2;10;20;30m  \033[0m")
	assert.Equal(t, 2, strings.Count(lines[2], "\033[48;2;0;0;0m"))
}
