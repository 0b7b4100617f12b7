// bmpview reads a BMP file, dumps its header and presents its pixels
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/display"
	"github.com/anas-shakeel/bmpview/internal/utils"
)

var errUsage = errors.New("missing command line argument (BMP file name)")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run executes the CLI. Every resource it opens is released before it
// returns, so callers may exit right after an error.
func run(args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("bmpview", flag.ContinueOnError)
	fs.SetOutput(stdout)
	infoFlag := fs.Bool("info", true, "Print the BMP header")
	showFlag := fs.Bool("show", true, "Render the pixels in the terminal (small images only)")
	outFlag := fs.String("o", "", "Save the presented image as a BMP file")
	rawFlag := fs.String("raw", "", "Stream the decoded RGB bytes to a file")
	zstdFlag := fs.Bool("zstd", false, "Compress the -raw stream with zstd")
	verboseFlag := fs.Bool("verbose", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stdout, "Usage: bmpview [options] file.bmp")
		fs.PrintDefaults()
		return errUsage
	}

	if *verboseFlag {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	filename := fs.Arg(0)
	bitmap, err := bmp.ReadBitmap(filename)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("file %s does not exist", filename)
		case errors.Is(err, bmp.ErrUnsupportedFormat):
			return fmt.Errorf("cannot decode %w", err)
		default:
			return fmt.Errorf("cannot read file: %w", err)
		}
	}

	h := bitmap.Header
	if *infoFlag {
		h.PrintInfo(stdout)
		fmt.Fprintln(stdout)
	}
	if *verboseFlag {
		packed := utils.BytesForBits(uint64(h.Width) * uint64(h.Height) * uint64(h.BitDepth))
		log.Printf("%s: %d palette entries, %d bytes declared, %d bytes unpadded", filename, len(bitmap.Palette), h.ImageSize, packed)
	}

	var sinks []display.Sink

	var canvas *display.Canvas
	if *showFlag || *outFlag != "" {
		canvas, err = display.NewCanvas(h.Width, h.Height)
		switch {
		case errors.Is(err, display.ErrCanvasTooLarge) && *outFlag == "":
			// Only the terminal preview wanted the canvas.
			log.Printf("skipping preview: %v", err)
			canvas, err = nil, nil
		case err != nil:
			return err
		default:
			sinks = append(sinks, canvas)
		}
	}

	if *rawFlag != "" {
		f, ferr := os.Create(*rawFlag)
		if ferr != nil {
			return ferr
		}
		defer f.Close()

		raw, rerr := display.NewRawSink(f, *zstdFlag)
		if rerr != nil {
			return rerr
		}
		// Flush whatever was presented, even when a later step fails.
		defer func() {
			if cerr := raw.Close(); cerr != nil && err == nil {
				err = cerr
			}
			if *verboseFlag {
				log.Printf("wrote raw pixels to %s", *rawFlag)
			}
		}()
		sinks = append(sinks, raw)
	}

	if err := display.Present(bitmap.Pixels, display.MultiSink(sinks...)); err != nil {
		return fmt.Errorf("cannot present pixel data: %w", err)
	}

	if canvas == nil {
		return nil
	}
	if *showFlag {
		if err := canvas.Render(stdout); err != nil {
			return err
		}
	}
	if *outFlag != "" {
		if err := canvas.Save(*outFlag); err != nil {
			return err
		}
		if *verboseFlag {
			log.Printf("saved %s", *outFlag)
		}
	}
	return nil
}
