package pixel

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"
)

// RGB888 is a packed 3-bytes-per-pixel image in row-major order.
// It implements image.Image.
type RGB888 struct {
	Width  int
	Height int
	Pix    []byte
}

// NewRGB888 allocates a zeroed image.
func NewRGB888(width, height int) *RGB888 {
	return &RGB888{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerRGB888),
	}
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (p *RGB888) PixOffset(x, y int) int {
	return (y*p.Width + x) * BytesPerRGB888
}

// RGB returns the channels at (x, y).
func (p *RGB888) RGB(x, y int) (r, g, b uint8) {
	n := p.PixOffset(x, y)
	return p.Pix[n], p.Pix[n+1], p.Pix[n+2]
}

// ColorModel implements image.Image.
func (p *RGB888) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *RGB888) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

// At implements image.Image.
func (p *RGB888) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := p.RGB(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RGB565Array is a sequence of RGB565 values with the image dimensions.
type RGB565Array struct {
	Width  int
	Height int
	Values []uint16
}

// Bytes serializes the values big-endian, 2 bytes per pixel.
func (a *RGB565Array) Bytes() []byte {
	b := make([]byte, len(a.Values)*BytesPerRGB565)
	for n, v := range a.Values {
		binary.BigEndian.PutUint16(b[n*BytesPerRGB565:], v)
	}
	return b
}

// PayloadHeaderSize is the size of the header preceding the pixel stream
// in a payload file. Decoding skips it.
const PayloadHeaderSize = 4

// PayloadFile returns the header (width, height as big-endian uint16)
// followed by the big-endian pixel stream. Dimensions outside the uint16
// range fail with ErrInvalidArguments.
func (a *RGB565Array) PayloadFile() ([]byte, error) {
	if a.Width < 0 || a.Width > math.MaxUint16 || a.Height < 0 || a.Height > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %dx%d exceeds payload header range", ErrInvalidArguments, a.Width, a.Height)
	}
	b := make([]byte, PayloadHeaderSize, PayloadHeaderSize+len(a.Values)*BytesPerRGB565)
	binary.BigEndian.PutUint16(b[0:], uint16(a.Width))
	binary.BigEndian.PutUint16(b[2:], uint16(a.Height))
	return append(b, a.Bytes()...), nil
}
