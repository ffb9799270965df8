// Package preview shows decoded images in a desktop window.
package preview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxWindowSize limits the scaled window dimensions.
const MaxWindowSize = 1024

// Scale returns the integer zoom for showing an image of size w x h,
// at least 1 and at most 4.
func Scale(w, h int) int {
	scale := 4
	for scale > 1 && (w*scale > MaxWindowSize || h*scale > MaxWindowSize) {
		scale--
	}
	return scale
}

// Show opens a window displaying img. It blocks until the window closes.
func Show(img image.Image, title string) error {
	bounds := img.Bounds()
	scale := Scale(bounds.Dx(), bounds.Dy())
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(bounds.Dx()*scale, bounds.Dy()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(10)
	return ebiten.RunGame(&viewer{src: img, w: bounds.Dx(), h: bounds.Dy()})
}

type viewer struct {
	src  image.Image
	img  *ebiten.Image
	w, h int
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w, v.h
}
