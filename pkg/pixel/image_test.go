package pixel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGB888Image(t *testing.T) {
	img, err := Decode([]byte{0xf8, 0x00, 0x00, 0x1f}, 2, 1)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
	require.Equal(t, color.RGBA{R: 255, A: 255}, img.At(0, 0))
	require.Equal(t, color.RGBA{B: 255, A: 255}, img.At(1, 0))
	require.Equal(t, color.RGBA{}, img.At(2, 0))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := decoded.At(1, 0).RGBA()
	require.Equal(t, []uint32{0, 0, 0xffff}, []uint32{r, g, b})
}

func TestRGB565ArrayBytes(t *testing.T) {
	arr := &RGB565Array{Width: 2, Height: 1, Values: []uint16{0xf800, 0x07e0}}
	require.Equal(t, []byte{0xf8, 0x00, 0x07, 0xe0}, arr.Bytes())
	payload, err := arr.PayloadFile()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 2, 0, 1, 0xf8, 0x00, 0x07, 0xe0}, payload)
}

func TestPayloadFileDimensionRange(t *testing.T) {
	payload, err := (&RGB565Array{Width: 65535, Height: 0}).PayloadFile()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0, 0}, payload)

	for _, arr := range []*RGB565Array{
		{Width: 65536, Height: 1},
		{Width: 1, Height: 70000},
		{Width: -1, Height: 1},
	} {
		_, err := arr.PayloadFile()
		require.True(t, errors.Is(err, ErrInvalidArguments), "%dx%d", arr.Width, arr.Height)
	}
}

func TestPayloadFileRoundTrip(t *testing.T) {
	src := NewRGB888(3, 2)
	for n := range src.Pix {
		src.Pix[n] = byte(n * 40)
	}
	arr := EncodeImage(src, Options{})
	payload, err := arr.PayloadFile()
	require.NoError(t, err)
	img, err := Decode(payload[PayloadHeaderSize:], arr.Width, arr.Height)
	require.NoError(t, err)
	require.Equal(t, arr.Values, EncodeImage(img, Options{}).Values)
}
