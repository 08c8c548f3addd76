package transforms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// SVD factorizes the image and keeps only its singular-value spectrum,
// broadcast over the input dimensions. Singular values above 255 clip on
// the 8-bit cast, so the map mostly profiles the spectrum tail, not a
// visual reconstruction.
type SVD struct{}

func NewSVD() *SVD {
	return &SVD{}
}

func (s *SVD) Name() string {
	return "svd"
}

func (s *SVD) Apply(input gocv.Mat) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.NewMat(), fmt.Errorf("svd: input image is empty")
	}

	rows, cols := input.Rows(), input.Cols()

	dense := matToDense(input)

	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDNone); !ok {
		return gocv.NewMat(), fmt.Errorf("svd: factorization did not converge")
	}
	values := svd.Values(nil)

	// Single row of singular values, clamped to 8 bits.
	row := gocv.NewMatWithSize(1, len(values), gocv.MatTypeCV8UC1)
	defer row.Close()
	for i, v := range values {
		if v > 255 {
			v = 255
		}
		row.SetUCharAt(0, i, uint8(v))
	}

	out := gocv.NewMat()
	gocv.Resize(row, &out, image.Pt(cols, rows), 0, 0, gocv.InterpolationLinear)
	return out, nil
}
