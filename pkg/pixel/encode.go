package pixel

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/gift"
)

// Size is a width x height pair.
type Size struct {
	Width  int
	Height int
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses a "WxH" spec, e.g. "128x128".
func ParseSize(spec string) (Size, error) {
	items := strings.SplitN(spec, "x", 2)
	if len(items) != 2 {
		return Size{}, fmt.Errorf("%w: resize %q, use WxH, e.g. 128x128", ErrInvalidArguments, spec)
	}
	w, err := strconv.Atoi(items[0])
	if err != nil {
		return Size{}, fmt.Errorf("%w: resize width %q", ErrInvalidArguments, items[0])
	}
	h, err := strconv.Atoi(items[1])
	if err != nil {
		return Size{}, fmt.Errorf("%w: resize height %q", ErrInvalidArguments, items[1])
	}
	if w <= 0 || h <= 0 {
		return Size{}, fmt.Errorf("%w: resize %q must be positive", ErrInvalidArguments, spec)
	}
	return Size{Width: w, Height: h}, nil
}

// Options controls EncodeImage.
type Options struct {
	// Resize, if set, resamples the image before encoding.
	Resize *Size
}

// Resize resamples img to size using Lanczos resampling.
func Resize(img image.Image, size Size) image.Image {
	g := gift.New(gift.Resize(size.Width, size.Height, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// EncodeImage converts img into RGB565 values in row-major order.
// The returned dimensions are those after the optional resize.
func EncodeImage(img image.Image, opts Options) *RGB565Array {
	if opts.Resize != nil {
		img = Resize(img, *opts.Resize)
	}
	bounds := img.Bounds()
	arr := &RGB565Array{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Values: make([]uint16, 0, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgbAt(img, x, y)
			arr.Values = append(arr.Values, Encode565(r, g, b))
		}
	}
	return arr
}

// rgbAt drops alpha the way converting to an RGB image does: channels are
// taken from the non-premultiplied color.
func rgbAt(img image.Image, x, y int) (r, g, b uint8) {
	switch src := img.(type) {
	case *RGB888:
		return src.RGB(x, y)
	case *image.NRGBA:
		c := src.NRGBAAt(x, y)
		return c.R, c.G, c.B
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}
