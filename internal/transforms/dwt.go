package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DWT performs a single-level 2-D Haar decomposition and keeps only the
// approximation band, upsampled back to the input dimensions.
//
// The approximation coefficients reach 510 for 8-bit input and the final
// cast saturates instead of rescaling. Bright areas therefore clip to 255.
// This matches the historical behavior and is deliberately not normalized.
type DWT struct{}

func NewDWT() *DWT {
	return &DWT{}
}

func (d *DWT) Name() string {
	return "dwt"
}

func (d *DWT) Apply(input gocv.Mat) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("dwt: input image is empty")
	}

	rows, cols := input.Rows(), input.Cols()

	floated := gocv.NewMat()
	defer floated.Close()
	input.ConvertTo(&floated, gocv.MatTypeCV32F)

	padded := evenPad(floated)
	defer padded.Close()

	halfRows := padded.Rows() / 2
	halfCols := padded.Cols() / 2

	// Haar low-pass in both directions: each 2x2 block collapses to
	// (a+b+c+d)/2.
	approx := gocv.NewMatWithSize(halfRows, halfCols, gocv.MatTypeCV32F)
	defer approx.Close()
	for y := 0; y < halfRows; y++ {
		for x := 0; x < halfCols; x++ {
			sum := padded.GetFloatAt(2*y, 2*x) +
				padded.GetFloatAt(2*y, 2*x+1) +
				padded.GetFloatAt(2*y+1, 2*x) +
				padded.GetFloatAt(2*y+1, 2*x+1)
			approx.SetFloatAt(y, x, sum/2)
		}
	}

	upsampled := gocv.NewMat()
	defer upsampled.Close()
	gocv.Resize(approx, &upsampled, image.Pt(cols, rows), 0, 0, gocv.InterpolationLinear)

	out := gocv.NewMat()
	upsampled.ConvertTo(&out, gocv.MatTypeCV8U)
	return out, nil
}
