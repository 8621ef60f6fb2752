package pixelmatch

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// Buffer errors.
var (
	// ErrInvalidDimensions is returned when width or height is not
	// positive, or when width*height*4 does not fit in int.
	ErrInvalidDimensions = errors.New("pixelmatch: invalid dimensions")

	// ErrBufferTooSmall is returned when raw pixel data holds fewer than
	// width*height*4 bytes.
	ErrBufferTooSmall = errors.New("pixelmatch: pixel buffer too small")
)

// Pixmap is a rectangular pixel buffer in row-major RGBA order, four bytes
// per pixel, with straight (non-premultiplied) alpha. Width and height are
// fixed at construction.
type Pixmap struct {
	width  int
	height int
	pix    []uint8
}

// NewPixmap creates a zeroed pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/4/height {
		return nil, ErrInvalidDimensions
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// FromRaw wraps existing RGBA data without copying. The caller must ensure
// pix remains valid for the lifetime of the pixmap; it must hold at least
// width*height*4 bytes, and any excess is ignored.
func FromRaw(pix []uint8, width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt/4/height {
		return nil, ErrInvalidDimensions
	}
	required := width * height * 4
	if len(pix) < required {
		return nil, ErrBufferTooSmall
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    pix[:required],
	}, nil
}

// FromImage copies any image.Image into a pixmap, converting to straight
// alpha. NRGBA sources are copied row by row; everything else goes through
// the color model.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			src := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.pix[y*width*4:(y+1)*width*4], nrgba.Pix[src:src+width*4])
		}
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.setPixel(x, y, [4]uint8{c.R, c.G, c.B, c.A})
		}
	}
	return pm
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA order, straight alpha).
func (p *Pixmap) Data() []uint8 {
	return p.pix
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	pix := make([]uint8, len(p.pix))
	copy(pix, p.pix)
	return &Pixmap{width: p.width, height: p.height, pix: pix}
}

// PixOffset returns the byte offset of pixel (x, y) in the data slice, or
// -1 if the coordinates are out of bounds.
func (p *Pixmap) PixOffset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * 4
}

// GetRGBA returns the channel values at (x, y), or all zeros if the
// coordinates are out of bounds.
func (p *Pixmap) GetRGBA(x, y int) (r, g, b, a uint8) {
	i := p.PixOffset(x, y)
	if i < 0 {
		return 0, 0, 0, 0
	}
	return p.pix[i], p.pix[i+1], p.pix[i+2], p.pix[i+3]
}

// SetRGBA sets the channel values at (x, y). Out-of-bounds coordinates are
// silently ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	i := p.PixOffset(x, y)
	if i < 0 {
		return
	}
	p.pix[i] = r
	p.pix[i+1] = g
	p.pix[i+2] = b
	p.pix[i+3] = a
}

// pixel returns the four channel bytes at (x, y).
// The coordinates must be in bounds.
func (p *Pixmap) pixel(x, y int) [4]uint8 {
	i := (y*p.width + x) * 4
	return [4]uint8(p.pix[i : i+4])
}

// setPixel writes the four channel bytes at (x, y).
// The coordinates must be in bounds.
func (p *Pixmap) setPixel(x, y int, px [4]uint8) {
	i := (y*p.width + x) * 4
	copy(p.pix[i:i+4], px[:])
}

// ToImage copies the pixmap into a standard library image.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.pix)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.GetRGBA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
