// Package pixelmatch compares two equally-sized RGBA images pixel by pixel
// and reports how many pixels differ perceptibly, for automated
// visual-regression testing.
//
// # Overview
//
// Colors are compared in the YIQ NTSC transmission color space, where
// distance tracks human perception better than raw RGB (Kotsarenko and
// Ramos, "Measuring perceived color difference using YIQ NTSC transmission
// color space in mobile applications"). Pixels whose distance exceeds the
// configured threshold are checked against an anti-aliasing detector
// (Vysniauskas, "Anti-aliased Pixel and Intensity Slope Detector", 2009) so
// that edge smoothing does not flood the result with noise, and an optional
// diff image is rendered with differing, anti-aliased, and matching pixels
// told apart by color.
//
// # Quick Start
//
//	expected, err := imageio.Load("expected.png")
//	if err != nil { ... }
//	actual, err := imageio.Load("actual.png")
//	if err != nil { ... }
//
//	diff, err := pixelmatch.NewPixmap(expected.Width(), expected.Height())
//	if err != nil { ... }
//
//	res, err := pixelmatch.Compare(expected, actual, diff, nil)
//	if err != nil { ... }
//	fmt.Println("different pixels:", res.DiffPixels)
//
//	if err := imageio.Save("diff.png", diff); err != nil { ... }
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug-level
// diagnostics for each comparison.
package pixelmatch

// Version is the current version of the library.
const Version = "0.1.0"
