// Package display delivers decoded bitmap samples to pixel sinks.
package display

import (
	"errors"
	"fmt"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

var ErrSinkWriteFailed = errors.New("display: sink write failed")

// Sink is a drawing surface that accepts one pixel at a time.
type Sink interface {
	SetPixel(x, y uint32, r, g, b uint8) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(x, y uint32, r, g, b uint8) error

func (f SinkFunc) SetPixel(x, y uint32, r, g, b uint8) error {
	return f(x, y, r, g, b)
}

// SampleSource is satisfied by *bmp.Samples.
type SampleSource interface {
	Next() bool
	Sample() bmp.Sample
	Err() error
}

// Present forwards every sample of src to sink in order. It stops at the
// first sink failure; pixels already written stay written.
func Present(src SampleSource, sink Sink) error {
	for src.Next() {
		s := src.Sample()
		if err := sink.SetPixel(s.X, s.Y, s.R, s.G, s.B); err != nil {
			return fmt.Errorf("%w at (%d, %d): %w", ErrSinkWriteFailed, s.X, s.Y, err)
		}
	}
	return src.Err()
}

type multiSink []Sink

func (m multiSink) SetPixel(x, y uint32, r, g, b uint8) error {
	for _, s := range m {
		if err := s.SetPixel(x, y, r, g, b); err != nil {
			return err
		}
	}
	return nil
}

// MultiSink duplicates each pixel to all the provided sinks, similar to
// io.MultiWriter. The first failing sink aborts the write.
func MultiSink(sinks ...Sink) Sink {
	all := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if ms, ok := s.(multiSink); ok {
			all = append(all, ms...)
		} else {
			all = append(all, s)
		}
	}
	return all
}
