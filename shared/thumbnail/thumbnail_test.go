package thumbnail_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"villa/shared/thumbnail"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestGenerate(t *testing.T) {
	out, err := thumbnail.Generate(pngImage(t, 200, 100), 50, 50)
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 50, decoded.Bounds().Dx())
	assert.Equal(t, 25, decoded.Bounds().Dy())
	assert.Equal(t, []byte{0xFF, 0xD8}, out[:2], "expected JPEG output")
}

func TestGenerate_NotAnImage(t *testing.T) {
	_, err := thumbnail.Generate([]byte("hello"), 50, 50)
	assert.Error(t, err)
}
