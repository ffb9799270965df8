package pixel

import (
	"fmt"
	"image"
	"image/png"
	"os"

	// image formats accepted as encoder input.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
)

// ReadPayloadFile reads an RGB565 payload file and strips the header.
func ReadPayloadFile(path string) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	if len(blob) < PayloadHeaderSize {
		return nil, nil
	}
	return blob[PayloadHeaderSize:], nil
}

// LoadImage decodes an image file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileError(path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func fileError(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return err
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
