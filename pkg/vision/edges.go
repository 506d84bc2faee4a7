package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/Fepozopo/swtdetect/pkg/swt"
)

// Fixed Canny thresholds.
const (
	cannyLowThreshold  = 100
	cannyHighThreshold = 300
)

// scharrKernelSize selects the Scharr kernel in gocv.Sobel (ksize=-1)
// rather than a 3x3 Sobel kernel.
const scharrKernelSize = -1

// Canny runs the fixed-threshold Canny edge detector over a grayscale
// grid and returns a binary edge grid (nonzero means edge).
func Canny(gray *swt.Grid[uint8]) (*swt.Grid[float64], error) {
	mat, err := grayGridToMat(gray)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(mat, &edges, cannyLowThreshold, cannyHighThreshold)

	rows, cols := edges.Rows(), edges.Cols()
	data, err := edges.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("vision: read canny output: %w", err)
	}
	grid := swt.NewGrid[float64](rows, cols)
	for i, v := range data[:rows*cols] {
		grid.Data[i] = float64(v)
	}
	return grid, nil
}

// Gradients computes the horizontal and vertical partial derivatives of
// gray with a Scharr operator (gocv.Sobel, ksize=-1), returned as flat
// row-major grids matching pkg/swt's array contract. Return order is
// (gx, gy): horizontal derivative first, vertical second.
func Gradients(gray *swt.Grid[uint8]) (gx, gy *swt.Grid[float64], err error) {
	mat, err := grayGridToMat(gray)
	if err != nil {
		return nil, nil, err
	}
	defer mat.Close()

	gxMat := gocv.NewMat()
	defer gxMat.Close()
	gyMat := gocv.NewMat()
	defer gyMat.Close()

	gocv.Sobel(mat, &gxMat, gocv.MatTypeCV32F, 1, 0, scharrKernelSize, 1, 0, gocv.BorderDefault)
	gocv.Sobel(mat, &gyMat, gocv.MatTypeCV32F, 0, 1, scharrKernelSize, 1, 0, gocv.BorderDefault)

	gx, err = matToFloatGrid(gxMat)
	if err != nil {
		return nil, nil, fmt.Errorf("vision: read horizontal gradient: %w", err)
	}
	gy, err = matToFloatGrid(gyMat)
	if err != nil {
		return nil, nil, fmt.Errorf("vision: read vertical gradient: %w", err)
	}
	return gx, gy, nil
}

func matToFloatGrid(mat gocv.Mat) (*swt.Grid[float64], error) {
	rows, cols := mat.Rows(), mat.Cols()
	data, err := mat.DataPtrFloat32()
	if err != nil {
		return nil, err
	}
	grid := swt.NewGrid[float64](rows, cols)
	for i, v := range data[:rows*cols] {
		grid.Data[i] = float64(v)
	}
	return grid, nil
}
