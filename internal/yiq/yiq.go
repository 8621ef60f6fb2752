// Package yiq implements the perceptual color metric used for pixel
// comparison.
//
// Colors are compared in the YIQ NTSC transmission color space, following
// "Measuring perceived color difference using YIQ NTSC transmission color
// space in mobile applications" by Y. Kotsarenko and F. Ramos. Distances in
// this space track human-perceived difference more closely than raw RGB
// Euclidean distance.
package yiq

// MaxDelta is the maximum possible value of the difference metric.
// A user-facing threshold in [0,1] converts to an absolute cutoff as
// MaxDelta * threshold * threshold.
const MaxDelta = 35215.0

// RGBToY converts RGB channel values to the luma component.
// Inputs are channel values in [0,255]; alpha must already be applied.
func RGBToY(r, g, b float64) float64 {
	return r*0.29889531 + g*0.58662247 + b*0.11448223
}

// RGBToI converts RGB channel values to the I chroma component.
func RGBToI(r, g, b float64) float64 {
	return r*0.59597799 - g*0.27417610 - b*0.32180189
}

// RGBToQ converts RGB channel values to the Q chroma component.
func RGBToQ(r, g, b float64) float64 {
	return r*0.21147017 - g*0.52261711 + b*0.31114694
}

// BlendWhite composites a single channel value against a white background.
// c is a channel value in [0,255], a an alpha fraction in [0,1].
func BlendWhite(c, a float64) float64 {
	return 255 + (c-255)*a
}

// Delta returns the perceptual squared distance between two RGBA pixels.
//
// Byte-identical pixels yield exactly 0. Pixels with alpha below 255 are
// composited against white before conversion, so partially transparent
// pixels compare as they would visually render. The sign encodes the
// brightness direction: negative when p1 is brighter than p2.
func Delta(p1, p2 [4]uint8) float64 {
	if p1 == p2 {
		return 0
	}

	r1, g1, b1 := blendPixel(p1)
	r2, g2, b2 := blendPixel(p2)

	y1 := RGBToY(r1, g1, b1)
	y2 := RGBToY(r2, g2, b2)
	y := y1 - y2
	i := RGBToI(r1, g1, b1) - RGBToI(r2, g2, b2)
	q := RGBToQ(r1, g1, b1) - RGBToQ(r2, g2, b2)

	delta := 0.5053*y*y + 0.299*i*i + 0.1957*q*q

	if y1 > y2 {
		return -delta
	}
	return delta
}

// BrightnessDelta returns the luma difference between two RGBA pixels,
// white-composited like Delta. Used by the anti-aliasing classifier, where
// only the brightness slope around a pixel matters.
func BrightnessDelta(p1, p2 [4]uint8) float64 {
	if p1 == p2 {
		return 0
	}
	r1, g1, b1 := blendPixel(p1)
	r2, g2, b2 := blendPixel(p2)
	return RGBToY(r1, g1, b1) - RGBToY(r2, g2, b2)
}

// GrayValue returns the faded grayscale value used to render a matched
// pixel into a diff image: the pixel's raw luma composited against white at
// alpha * A/255. alpha is the caller's fade opacity in [0,1].
func GrayValue(p [4]uint8, alpha float64) uint8 {
	y := RGBToY(float64(p[0]), float64(p[1]), float64(p[2]))
	return uint8(BlendWhite(y, alpha*float64(p[3])/255))
}

// blendPixel returns the pixel's RGB channels composited against white.
// Fully opaque pixels pass through unchanged.
func blendPixel(p [4]uint8) (r, g, b float64) {
	r = float64(p[0])
	g = float64(p[1])
	b = float64(p[2])
	if p[3] < 255 {
		a := float64(p[3]) / 255
		r = BlendWhite(r, a)
		g = BlendWhite(g, a)
		b = BlendWhite(b, a)
	}
	return r, g, b
}
