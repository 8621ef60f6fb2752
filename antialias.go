package pixelmatch

import "github.com/gopix/pixelmatch/internal/yiq"

// antialiased reports whether the pixel at (x, y) in img looks like part of
// an anti-aliased edge rather than a content change, based on the
// "Anti-aliased Pixel and Intensity Slope Detector" by V. Vysniauskas
// (2009).
//
// The pixel's in-bounds neighbors are scanned for brightness-only deltas
// against the center. A flat region (more than two brightness-identical
// neighbors) or a one-sided slope (no darker or no brighter neighbor) is
// not anti-aliasing. Otherwise the pixel qualifies when the neighbor at
// either brightness extreme sits in a flat region of BOTH images, which is
// how a smoothed gradient falls off into solid color on each side.
func antialiased(img, other *Pixmap, x, y int) bool {
	center := img.pixel(x, y)

	zeroes := 0
	var min, max float64
	var minX, minY, maxX, maxY int

	// Column-major scan; ties between equal extrema keep the first
	// neighbor visited.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= img.width || ny < 0 || ny >= img.height {
				continue
			}

			delta := yiq.BrightnessDelta(center, img.pixel(nx, ny))
			switch {
			case delta == 0:
				zeroes++
				if zeroes > 2 {
					return false
				}
			case delta < min:
				min = delta
				minX, minY = nx, ny
			case delta > max:
				max = delta
				maxX, maxY = nx, ny
			}
		}
	}

	if min == 0 || max == 0 {
		return false
	}

	return (hasManySiblings(img, minX, minY) && hasManySiblings(other, minX, minY)) ||
		(hasManySiblings(img, maxX, maxY) && hasManySiblings(other, maxX, maxY))
}

// hasManySiblings reports whether more than two of the in-bounds neighbors
// of (x, y) are byte-identical to it, alpha included.
func hasManySiblings(img *Pixmap, x, y int) bool {
	center := img.pixel(x, y)

	siblings := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= img.width || ny < 0 || ny >= img.height {
				continue
			}

			if img.pixel(nx, ny) == center {
				siblings++
				if siblings > 2 {
					return true
				}
			}
		}
	}
	return false
}
