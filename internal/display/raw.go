package display

import (
	"bufio"
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

// RawSink streams R, G, B bytes for every pixel in presentation order,
// optionally wrapped in a zstd frame. Call Close to flush.
type RawSink struct {
	bw  *bufio.Writer
	zw  *zstd.Encoder
	out io.Writer
	rgb [3]byte
}

func NewRawSink(w io.Writer, compress bool) (*RawSink, error) {
	s := &RawSink{bw: bufio.NewWriter(w)}
	s.out = s.bw
	if compress {
		zw, err := zstd.NewWriter(s.bw, zstd.WithEncoderConcurrency(runtime.NumCPU()))
		if err != nil {
			return nil, err
		}
		s.zw, s.out = zw, zw
	}
	return s, nil
}

func (s *RawSink) SetPixel(x, y uint32, r, g, b uint8) error {
	s.rgb = [3]byte{r, g, b}
	_, err := s.out.Write(s.rgb[:])
	return err
}

// Close ends the zstd frame, if any, and flushes buffered bytes. It does not
// close the underlying writer.
func (s *RawSink) Close() error {
	if s.zw != nil {
		if err := s.zw.Close(); err != nil {
			return err
		}
	}
	return s.bw.Flush()
}
