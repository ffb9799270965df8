package pixel

const (
	// BytesPerRGB565 is the size of one packed RGB565 sample.
	BytesPerRGB565 = 2
	// BytesPerRGB888 is the size of one RGB888 sample.
	BytesPerRGB888 = 3

	mask5 = 0x1f
	mask6 = 0x3f
)

// Expand5 expands a 5-bit channel to 8 bits by bit replication.
func Expand5(v uint8) uint8 {
	v &= mask5
	return v<<3 | v>>2
}

// Expand6 expands a 6-bit channel to 8 bits by bit replication.
func Expand6(v uint8) uint8 {
	v &= mask6
	return v<<2 | v>>4
}

// Encode565 packs 8-bit channels into an RGB565 value by truncation.
func Encode565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Decode565 unpacks an RGB565 value into expanded 8-bit channels.
func Decode565(v uint16) (r, g, b uint8) {
	return Expand5(uint8(v >> 11)), Expand6(uint8(v >> 5)), Expand5(uint8(v))
}

// RequiredLen returns the number of RGB565 bytes for width x height pixels.
func RequiredLen(width, height int) int {
	return width * height * BytesPerRGB565
}

// Decode converts big-endian RGB565 data into a new RGB888 image.
// Only the first width*height*2 bytes are consumed; trailing bytes are
// ignored. A shorter input fails with *PayloadTooSmallError.
func Decode(data []byte, width, height int) (*RGB888, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidArguments
	}
	expected := RequiredLen(width, height)
	if len(data) < expected {
		return nil, &PayloadTooSmallError{Actual: len(data), Expected: expected}
	}
	img := NewRGB888(width, height)
	dst := img.Pix
	for i, j := 0, 0; i < expected; i, j = i+BytesPerRGB565, j+BytesPerRGB888 {
		dst[j], dst[j+1], dst[j+2] = Decode565(uint16(data[i])<<8 | uint16(data[i+1]))
	}
	return img, nil
}
