// Command pixelmatch compares two images pixel by pixel and reports how
// many pixels differ, optionally writing a diff visualization.
//
// Usage:
//
//	pixelmatch [flags] expected actual [diff]
//
// Flag defaults can be seeded through PIXELMATCH_* environment variables
// or a .env file in the working directory. The exit code is 0 when the
// images match, 66 when they differ, 64 for usage errors and 65 for
// unreadable or mismatched inputs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopix/pixelmatch"
	"github.com/gopix/pixelmatch/imageio"
)

// Exit codes, following BSD sysexits.
const (
	exitOK    = 0
	exitUsage = 64
	exitData  = 65
	exitDiff  = 66
)

// envOr reads a typed default from the environment, falling back when the
// variable is unset or malformed.
func envOr[T any](key string, defaultValue T) T {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	switch any(defaultValue).(type) {
	case string:
		return any(value).(T)
	case int:
		if intValue, err := strconv.Atoi(value); err == nil {
			return any(intValue).(T)
		}
	case float64:
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return any(floatValue).(T)
		}
	case bool:
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return any(boolValue).(T)
		}
	}

	return defaultValue
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	defaults := pixelmatch.DefaultOptions()

	fs := flag.NewFlagSet("pixelmatch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		threshold = fs.Float64("threshold", envOr("PIXELMATCH_THRESHOLD", defaults.Threshold), "matching threshold in [0, 1]; smaller is stricter")
		includeAA = fs.Bool("include-aa", envOr("PIXELMATCH_INCLUDE_AA", false), "count anti-aliased pixels as differences")
		alpha     = fs.Float64("alpha", envOr("PIXELMATCH_ALPHA", defaults.Alpha), "opacity of unchanged pixels in the diff output")
		aaColor   = fs.String("aa-color", envOr("PIXELMATCH_AA_COLOR", "#ffff00"), "hex color for anti-aliased pixels")
		diffColor = fs.String("diff-color", envOr("PIXELMATCH_DIFF_COLOR", "#ff0000"), "hex color for differing pixels")
		altColor  = fs.String("diff-color-alt", envOr("PIXELMATCH_DIFF_COLOR_ALT", "#b20000"), "hex color for pixels darker in the second image")
		mask      = fs.Bool("mask", envOr("PIXELMATCH_MASK", false), "render the diff over a transparent background")
		workers   = fs.Int("workers", envOr("PIXELMATCH_WORKERS", 0), "comparison goroutines; 0 means GOMAXPROCS")
		verbose   = fs.Bool("verbose", false, "log comparison diagnostics to stderr")
		quiet     = fs.Bool("quiet", false, "suppress output and report through the exit code only")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pixelmatch [flags] expected actual [diff]\n\n")
		fmt.Fprintf(fs.Output(), "Compares two images and reports the number of differing pixels.\n")
		fmt.Fprintf(fs.Output(), "Writes a diff visualization when a third path is given.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	paths := fs.Args()
	if len(paths) < 2 || len(paths) > 3 {
		fs.Usage()
		return exitUsage
	}

	opts := defaults
	opts.Threshold = *threshold
	opts.IncludeAA = *includeAA
	opts.Alpha = *alpha
	opts.DiffMask = *mask
	opts.Workers = *workers

	var err error
	if opts.AAColor, err = pixelmatch.ParseRGB(*aaColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if opts.DiffColor, err = pixelmatch.ParseRGB(*diffColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if opts.DiffColorAlt, err = pixelmatch.ParseRGB(*altColor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	if *verbose {
		pixelmatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var expected, actual *pixelmatch.Pixmap
	var eg errgroup.Group
	eg.Go(func() error {
		p, err := imageio.Load(paths[0])
		if err != nil {
			return err
		}
		expected = p
		return nil
	})
	eg.Go(func() error {
		p, err := imageio.Load(paths[1])
		if err != nil {
			return err
		}
		actual = p
		return nil
	})
	if err := eg.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitData
	}

	var diff *pixelmatch.Pixmap
	if len(paths) == 3 {
		diff, err = pixelmatch.NewPixmap(expected.Width(), expected.Height())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitData
		}
	}

	start := time.Now()
	res, err := pixelmatch.Compare(expected, actual, diff, &opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, pixelmatch.ErrInvalidOption) {
			return exitUsage
		}
		return exitData
	}
	elapsed := time.Since(start)

	if !*quiet {
		out := message.NewPrinter(language.English)
		out.Printf("matched in %v\n", elapsed)
		out.Printf("different pixels: %d\n", res.DiffPixels)
		out.Printf("error: %.2f%%\n", errorPercent(res.DiffPixels, expected.Width(), expected.Height()))
	}

	if diff != nil {
		if err := imageio.Save(paths[2], diff); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitData
		}
	}

	if res.DiffPixels > 0 {
		return exitDiff
	}
	return exitOK
}

// errorPercent is the share of differing pixels, rounded to two decimals.
func errorPercent(diffPixels, width, height int) float64 {
	return math.Round(10000*float64(diffPixels)/float64(width*height)) / 100
}
