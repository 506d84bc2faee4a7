// Package vision implements the image-processing collaborators kept
// out of the core pipeline: color-space conversion, Canny edge
// detection, Scharr gradient computation, and diagnostic
// rectangle/label rendering. pkg/swt never imports this package; it
// only consumes the flat grids these functions produce.
package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/Fepozopo/swtdetect/pkg/swt"
)

// ToGray converts a decoded image to an 8-bit grayscale grid via
// gocv.CvtColor, going through BGR first so the channel-order
// assumption is explicit rather than incidental.
func ToGray(img image.Image) (*swt.Grid[uint8], error) {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("vision: decode source image: %w", err)
	}
	defer rgb.Close()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(rgb, &bgr, gocv.ColorRGBToBGR)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)

	return matToGrayGrid(gray)
}

func matToGrayGrid(mat gocv.Mat) (*swt.Grid[uint8], error) {
	rows, cols := mat.Rows(), mat.Cols()
	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("vision: read gray mat: %w", err)
	}
	grid := swt.NewGrid[uint8](rows, cols)
	copy(grid.Data, data[:rows*cols])
	return grid, nil
}

func grayGridToMat(gray *swt.Grid[uint8]) (gocv.Mat, error) {
	mat, err := gocv.NewMatFromBytes(gray.Rows, gray.Cols, gocv.MatTypeCV8U, gray.Data)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("vision: build gray mat: %w", err)
	}
	return mat, nil
}
