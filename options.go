package pixelmatch

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOption is returned when an option value is out of range.
var ErrInvalidOption = errors.New("pixelmatch: invalid option")

// Options configure how Compare classifies pixel pairs and renders the
// diff output. The zero value is not meaningful; start from
// DefaultOptions or pass nil to Compare.
type Options struct {
	// Threshold is the matching sensitivity in [0, 1]; smaller is
	// stricter. A pixel pair differs when its perceptual distance exceeds
	// MaxDelta * Threshold^2.
	Threshold float64

	// IncludeAA counts anti-aliased pixels as differences instead of
	// suppressing them. Detection is skipped entirely when set.
	IncludeAA bool

	// Alpha is the opacity in [0, 1] used when fading matched pixels into
	// the diff output.
	Alpha float64

	// AAColor is painted over pixels classified as anti-aliasing.
	AAColor RGB

	// DiffColor is painted over differing pixels where the actual image is
	// at least as bright as the expected one.
	DiffColor RGB

	// DiffColorAlt is painted over differing pixels where the actual image
	// is darker, separating lost content from gained content. Set it equal
	// to DiffColor to paint both directions alike.
	DiffColorAlt RGB

	// DiffMask renders the diff over a transparent background: matched and
	// anti-aliased pixels are written fully transparent instead of painted.
	DiffMask bool

	// Workers caps the number of goroutines comparing row bands.
	// 0 or negative means GOMAXPROCS; 1 compares sequentially. The result
	// is identical for any worker count.
	Workers int
}

// DefaultOptions returns the standard comparison configuration.
func DefaultOptions() Options {
	return Options{
		Threshold:    0.1,
		IncludeAA:    false,
		Alpha:        0.1,
		AAColor:      RGB{R: 255, G: 255, B: 0},
		DiffColor:    RGB{R: 255, G: 0, B: 0},
		DiffColorAlt: RGB{R: 178, G: 0, B: 0},
		DiffMask:     false,
		Workers:      0,
	}
}

// validate rejects out-of-range option values before any pixel work runs.
// NaN is out of range.
func (o *Options) validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0, 1]", ErrInvalidOption, o.Threshold)
	}
	if math.IsNaN(o.Alpha) || o.Alpha < 0 || o.Alpha > 1 {
		return fmt.Errorf("%w: alpha %v outside [0, 1]", ErrInvalidOption, o.Alpha)
	}
	return nil
}
