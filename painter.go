package pixelmatch

import "github.com/gopix/pixelmatch/internal/yiq"

// painter writes per-pixel classification results into an optional diff
// buffer. With no buffer it is a no-op, so the comparison loop can dispatch
// unconditionally. Writes are pixel-disjoint and therefore safe from
// concurrent row bands.
type painter struct {
	out   *Pixmap
	aa    [4]uint8
	diff  [4]uint8
	alt   [4]uint8
	alpha float64
	mask  bool
}

// transparent is written for matched and anti-aliased pixels in mask mode.
var transparent = [4]uint8{0, 0, 0, 0}

func newPainter(out *Pixmap, o *Options) *painter {
	return &painter{
		out:   out,
		aa:    o.AAColor.rgba(),
		diff:  o.DiffColor.rgba(),
		alt:   o.DiffColorAlt.rgba(),
		alpha: o.Alpha,
		mask:  o.DiffMask,
	}
}

// paintDiff marks a differing pixel. The delta sign picks the color:
// negative means the actual image darkened, drawn with the alternate color.
// Differing pixels are painted in mask mode too.
func (pt *painter) paintDiff(x, y int, delta float64) {
	if pt.out == nil {
		return
	}
	if delta < 0 {
		pt.out.setPixel(x, y, pt.alt)
		return
	}
	pt.out.setPixel(x, y, pt.diff)
}

// paintAA marks an anti-aliased pixel. In mask mode such pixels stay
// transparent.
func (pt *painter) paintAA(x, y int) {
	if pt.out == nil {
		return
	}
	if pt.mask {
		pt.out.setPixel(x, y, transparent)
		return
	}
	pt.out.setPixel(x, y, pt.aa)
}

// paintMatch marks a matched pixel: transparent in mask mode, otherwise the
// source pixel's luma faded toward white so differences stand out. The gray
// value fills all four channels, alpha included.
func (pt *painter) paintMatch(x, y int, px [4]uint8) {
	if pt.out == nil {
		return
	}
	if pt.mask {
		pt.out.setPixel(x, y, transparent)
		return
	}
	v := yiq.GrayValue(px, pt.alpha)
	pt.out.setPixel(x, y, [4]uint8{v, v, v, v})
}

// fillMatches renders every pixel of src as matched. Used on the
// whole-image fast path when both inputs are byte-identical.
func (pt *painter) fillMatches(src *Pixmap) {
	if pt.out == nil {
		return
	}
	if pt.mask {
		clear(pt.out.pix)
		return
	}
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			pt.paintMatch(x, y, src.pixel(x, y))
		}
	}
}
