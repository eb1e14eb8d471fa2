// Command mandelbrot renders a grayscale image of the Mandelbrot set to a
// PNG, BMP or TIFF file.
//
// Usage:
//
//	mandelbrot [flags] FILE PIXELS SEPARATOR UPPERLEFT LOWERRIGHT
//
// Example:
//
//	mandelbrot mandel.png 1000x750 x -1.20,0.35 -1,0.20
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshvictor1024/mandelbands/pkg/imgfile"
	"github.com/joshvictor1024/mandelbands/pkg/mandel"
	"github.com/joshvictor1024/mandelbands/pkg/parse"
	"github.com/joshvictor1024/mandelbands/pkg/types"
)

// errUsage marks errors caused by bad arguments.
var errUsage = errors.New("usage")

type job struct {
	file    string
	bounds  types.Bounds
	vp      types.Viewport
	workers int
	limit   int
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		slog.Error("mandelbrot failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	j, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if j.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	mandel.SetLogger(logger)

	return render(j, logger)
}

func parseArgs(args []string, stderr io.Writer) (job, error) {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	workers := fs.Int("workers", mandel.DefaultWorkers, "number of bands rendered in parallel (0 = GOMAXPROCS)")
	limit := fs.Int("limit", mandel.DefaultLimit, "iteration limit of the escape-time test")
	verbose := fs.Bool("v", false, "log render details")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] FILE PIXELS SEPARATOR UPPERLEFT LOWERRIGHT\n", fs.Name())
		fmt.Fprintf(fs.Output(), "Example: %s mandel.png 1000x750 x -1.20,0.35 -1,0.20\n", fs.Name())
		fs.PrintDefaults()
	}

	usage := func(err error) (job, error) {
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return job{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	if err := fs.Parse(args); err != nil {
		return job{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 5 {
		return usage(fmt.Errorf("expected 5 arguments, got %d", fs.NArg()))
	}
	if *limit < 1 {
		return usage(fmt.Errorf("iteration limit must be positive, got %d", *limit))
	}

	sep, err := parse.Separator(fs.Arg(2))
	if err != nil {
		return usage(err)
	}
	bounds, err := parse.Bounds(fs.Arg(1), sep)
	if err != nil {
		return usage(fmt.Errorf("image dimensions: %w", err))
	}
	vp, err := parse.Viewport(fs.Arg(3), fs.Arg(4))
	if err != nil {
		return usage(err)
	}
	if _, err := imgfile.FormatFor(fs.Arg(0)); err != nil {
		return usage(err)
	}

	return job{
		file:    fs.Arg(0),
		bounds:  bounds,
		vp:      vp,
		workers: *workers,
		limit:   *limit,
		verbose: *verbose,
	}, nil
}

func render(j job, logger *slog.Logger) error {
	r := mandel.New(mandel.WithWorkers(j.workers), mandel.WithLimit(j.limit))
	pixels := make([]byte, r.FrameSize(j.bounds))

	start := time.Now()
	r.Render(pixels, j.bounds, j.vp)
	elapsed := time.Since(start)

	if err := imgfile.Write(j.file, pixels, j.bounds); err != nil {
		return fmt.Errorf("write %s: %w", j.file, err)
	}

	p := message.NewPrinter(language.English)
	logger.Info("image written",
		"file", j.file,
		"size", j.bounds.String(),
		"pixels", p.Sprintf("%d", j.bounds.Pixels()),
		"workers", r.Workers(),
		"render", elapsed.Round(time.Millisecond))
	return nil
}
