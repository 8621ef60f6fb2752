package pixelmatch

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gopix/pixelmatch/internal/parallel"
	"github.com/gopix/pixelmatch/internal/yiq"
)

// Comparison errors.
var (
	// ErrDimensionMismatch is returned when the input images, or the diff
	// buffer, disagree in width or height.
	ErrDimensionMismatch = errors.New("pixelmatch: dimension mismatch")

	// ErrNilImage is returned when a required input image is nil.
	ErrNilImage = errors.New("pixelmatch: nil image")
)

// Result summarizes a comparison.
type Result struct {
	// DiffPixels is the number of pixels classified as a real difference.
	DiffPixels int

	// AAPixels is the number of pixels suppressed as anti-aliasing
	// artifacts. Always 0 when Options.IncludeAA is set, since detection
	// is skipped and such pixels count as differences instead.
	AAPixels int
}

// classification of a compared pixel pair.
type classification uint8

const (
	classMatch classification = iota
	classAntiAliased
	classDiff
)

// Compare compares two equally-sized images pixel by pixel and reports how
// many pixels differ perceptibly. If diff is non-nil it must share the
// input dimensions and receives the rendered visualization: every one of
// its pixels is overwritten. A nil opts means DefaultOptions.
//
// The comparison itself cannot fail: after validation every pixel access is
// in bounds and all arithmetic is total over the channel domain.
func Compare(expected, actual, diff *Pixmap, opts *Options) (Result, error) {
	if expected == nil || actual == nil {
		return Result{}, ErrNilImage
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	if expected.width != actual.width || expected.height != actual.height {
		return Result{}, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, expected.width, expected.height, actual.width, actual.height)
	}
	if diff != nil && (diff.width != expected.width || diff.height != expected.height) {
		return Result{}, fmt.Errorf("%w: diff buffer %dx%d, images %dx%d",
			ErrDimensionMismatch, diff.width, diff.height, expected.width, expected.height)
	}

	start := time.Now()
	pt := newPainter(diff, &o)

	if bytes.Equal(expected.pix, actual.pix) {
		pt.fillMatches(expected)
		Logger().Debug("images identical",
			slog.Int("width", expected.width),
			slog.Int("height", expected.height),
			slog.Duration("elapsed", time.Since(start)))
		return Result{}, nil
	}

	cutoff := yiq.MaxDelta * o.Threshold * o.Threshold

	// Row bands compare independently: classification never reads another
	// pixel's outcome, and output writes are pixel-disjoint. Each band
	// accumulates a local Result; the sum is order-free.
	spans := parallel.Spans(expected.height, o.Workers)
	results := make([]Result, len(spans))
	parallel.Run(len(spans), func(i int) {
		results[i] = compareSpan(expected, actual, pt, spans[i], cutoff, o.IncludeAA)
	})

	var res Result
	for _, r := range results {
		res.DiffPixels += r.DiffPixels
		res.AAPixels += r.AAPixels
	}

	Logger().Debug("comparison finished",
		slog.Int("width", expected.width),
		slog.Int("height", expected.height),
		slog.Int("workers", len(spans)),
		slog.Float64("cutoff", cutoff),
		slog.Int("diff_pixels", res.DiffPixels),
		slog.Int("aa_pixels", res.AAPixels),
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}

// compareSpan classifies every pixel in a band of rows, painting as it
// goes and accumulating counts into a band-local Result.
func compareSpan(expected, actual *Pixmap, pt *painter, rows parallel.Span, cutoff float64, includeAA bool) Result {
	var res Result
	for y := rows.Start; y < rows.End; y++ {
		for x := 0; x < expected.width; x++ {
			class, delta := classify(expected, actual, x, y, cutoff, includeAA)
			switch class {
			case classMatch:
				pt.paintMatch(x, y, expected.pixel(x, y))
			case classAntiAliased:
				pt.paintAA(x, y)
				res.AAPixels++
			case classDiff:
				pt.paintDiff(x, y, delta)
				res.DiffPixels++
			}
		}
	}
	return res
}

// classify decides how the pixel at (x, y) compares across the two images
// and returns the signed delta that drove the decision. It is pure; all
// mutation stays with the caller.
//
// Byte-identical pixels match without a metric computation. Above-cutoff
// pixels are checked for anti-aliasing in both images, either side
// qualifying, unless includeAA disables detection.
func classify(expected, actual *Pixmap, x, y int, cutoff float64, includeAA bool) (classification, float64) {
	p1 := expected.pixel(x, y)
	p2 := actual.pixel(x, y)
	if p1 == p2 {
		return classMatch, 0
	}

	delta := yiq.Delta(p1, p2)
	if math.Abs(delta) <= cutoff {
		return classMatch, delta
	}

	if !includeAA && (antialiased(expected, actual, x, y) || antialiased(actual, expected, x, y)) {
		return classAntiAliased, delta
	}
	return classDiff, delta
}
