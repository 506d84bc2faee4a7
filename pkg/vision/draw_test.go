package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawRectangleOutlinesBox(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := range src.Pix {
		src.Pix[i] = 0
	}

	out, err := DrawRectangle(src, image.Pt(2, 2), image.Pt(10, 10), color.White, "")
	require.NoError(t, err)

	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)

	r, g, b, _ := nrgba.At(2, 2).RGBA()
	require.NotZero(t, r)
	require.NotZero(t, g)
	require.NotZero(t, b)

	r, g, b, _ = nrgba.At(6, 6).RGBA()
	require.Zero(t, r)
	require.Zero(t, g)
	require.Zero(t, b)
}

func TestDrawRectangleNilImageErrors(t *testing.T) {
	_, err := DrawRectangle(nil, image.Pt(0, 0), image.Pt(1, 1), color.White, "")
	require.Error(t, err)
}

func TestDrawRectangleClampsOutOfBoundsCorners(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	out, err := DrawRectangle(src, image.Pt(-5, -5), image.Pt(50, 50), color.White, "")
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
}
