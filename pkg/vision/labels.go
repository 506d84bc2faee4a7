package vision

import (
	"image"
	"image/color"

	"github.com/Fepozopo/swtdetect/pkg/swt"
)

// LabelsToImage renders a labeled-component grid as a grayscale image,
// one gray level per label (mod 255, 0 reserved for unlabeled
// background), for visual inspection of the connected-component stage.
func LabelsToImage(labels *swt.Grid[int]) image.Image {
	out := image.NewGray(image.Rect(0, 0, labels.Cols, labels.Rows))
	for r := 0; r < labels.Rows; r++ {
		for c := 0; c < labels.Cols; c++ {
			label := labels.At(r, c)
			if label == 0 {
				continue
			}
			level := uint8(label%255) + 1
			out.SetGray(c, r, color.Gray{Y: level})
		}
	}
	return out
}
