package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DCT computes the 2-D discrete cosine transform of the whole image and
// returns the min-max normalized coefficient grid as an 8-bit map. The map
// lives in the frequency domain: its coordinates are frequencies, not
// pixel positions.
type DCT struct{}

func NewDCT() *DCT {
	return &DCT{}
}

func (d *DCT) Name() string {
	return "dct"
}

func (d *DCT) Apply(input gocv.Mat) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("dct: input image is empty")
	}

	rows, cols := input.Rows(), input.Cols()

	floated := gocv.NewMat()
	defer floated.Close()
	input.ConvertTo(&floated, gocv.MatTypeCV32F)

	// OpenCV's DCT only accepts even-sized arrays.
	padded := evenPad(floated)
	defer padded.Close()

	coeffs := gocv.NewMat()
	defer coeffs.Close()
	gocv.DCT(padded, &coeffs, gocv.DftForward)

	normalized := gocv.NewMat()
	defer normalized.Close()
	gocv.Normalize(coeffs, &normalized, 0, 255, gocv.NormMinMax)

	bytes := gocv.NewMat()
	defer bytes.Close()
	normalized.ConvertTo(&bytes, gocv.MatTypeCV8U)

	out := gocv.NewMat()
	gocv.Resize(bytes, &out, image.Pt(cols, rows), 0, 0, gocv.InterpolationLinear)
	return out, nil
}
