package pixel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	require.Equal(t, uint8(0), Expand5(0))
	require.Equal(t, uint8(255), Expand5(31))
	require.Equal(t, uint8(0), Expand6(0))
	require.Equal(t, uint8(255), Expand6(63))
	for v := uint8(1); v < 32; v++ {
		require.True(t, Expand5(v) >= Expand5(v-1), "Expand5(%d)", v)
		require.Equal(t, v, Expand5(v)>>3)
	}
	for v := uint8(1); v < 64; v++ {
		require.True(t, Expand6(v) >= Expand6(v-1), "Expand6(%d)", v)
		require.Equal(t, v, Expand6(v)>>2)
	}
}

func TestEncode565(t *testing.T) {
	testCases := []struct {
		r, g, b uint8
		expect  uint16
	}{
		{255, 255, 255, 0xffff},
		{0, 0, 0, 0x0000},
		{255, 0, 0, 0xf800},
		{0, 255, 0, 0x07e0},
		{0, 0, 255, 0x001f},
		{7, 3, 7, 0x0000},
		{8, 4, 8, 0x0821},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expect, Encode565(tc.r, tc.g, tc.b), "rgb(%d,%d,%d)", tc.r, tc.g, tc.b)
	}
}

func TestEncodeDecodeStable(t *testing.T) {
	for v := 0; v <= 0xffff; v++ {
		r, g, b := Decode565(uint16(v))
		require.Equal(t, uint16(v), Encode565(r, g, b))
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name   string
		data   []byte
		expect []byte
	}{
		{"red", []byte{0xf8, 0x00}, []byte{255, 0, 0}},
		{"green", []byte{0x07, 0xe0}, []byte{0, 255, 0}},
		{"blue", []byte{0x00, 0x1f}, []byte{0, 0, 255}},
		{"white", []byte{0xff, 0xff}, []byte{255, 255, 255}},
		{"mid", []byte{0x84, 0x10}, []byte{132, 130, 132}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := Decode(tc.data, 1, 1)
			require.NoError(t, err)
			require.Equal(t, tc.expect, img.Pix)
		})
	}
}

func TestDecodeRowMajor(t *testing.T) {
	data := []byte{0xf8, 0x00, 0x07, 0xe0, 0x00, 0x1f, 0x00, 0x00}
	img, err := Decode(data, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 0, 0, 0,
	}, img.Pix)
	r, g, b := img.RGB(0, 1)
	require.Equal(t, []uint8{0, 0, 255}, []uint8{r, g, b})
}

func TestDecodeDeterministic(t *testing.T) {
	data := make([]byte, 4*3*2)
	for n := range data {
		data[n] = byte(n * 37)
	}
	a, err := Decode(data, 4, 3)
	require.NoError(t, err)
	b, err := Decode(data, 4, 3)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDecodeTruncatesExtraBytes(t *testing.T) {
	data := make([]byte, 3*2*2)
	for n := range data {
		data[n] = byte(n*53 + 1)
	}
	expect, err := Decode(data, 3, 2)
	require.NoError(t, err)
	for k := 1; k < 5; k++ {
		longer := append(append([]byte{}, data...), make([]byte, k)...)
		for n := len(data); n < len(longer); n++ {
			longer[n] = 0xaa
		}
		img, err := Decode(longer, 3, 2)
		require.NoError(t, err)
		require.Equal(t, expect, img)
	}
}

func TestDecodeTooSmall(t *testing.T) {
	for _, size := range []int{0, 1, 7, 15} {
		_, err := Decode(make([]byte, size), 4, 2)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrPayloadTooSmall))
		var tooSmall *PayloadTooSmallError
		require.True(t, errors.As(err, &tooSmall))
		require.Equal(t, size, tooSmall.Actual)
		require.Equal(t, 16, tooSmall.Expected)
	}
}

func TestDecodeInvalidDimensions(t *testing.T) {
	_, err := Decode([]byte{0, 0}, 0, 1)
	require.True(t, errors.Is(err, ErrInvalidArguments))
	_, err = Decode([]byte{0, 0}, 1, -1)
	require.True(t, errors.Is(err, ErrInvalidArguments))
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	data := []byte{0xf8, 0x00}
	img, err := Decode(data, 1, 1)
	require.NoError(t, err)
	img.Pix[0] = 0
	require.Equal(t, []byte{0xf8, 0x00}, data)
}
