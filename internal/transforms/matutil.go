// Shared conversions between gocv matrices and gonum dense matrices
package transforms

import (
	"image/color"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// evenPad returns a copy of m grown by one replicated row and/or column so
// that both dimensions are even. The caller owns the returned matrix.
func evenPad(m gocv.Mat) gocv.Mat {
	padBottom := m.Rows() % 2
	padRight := m.Cols() % 2
	if padBottom == 0 && padRight == 0 {
		return m.Clone()
	}

	padded := gocv.NewMat()
	gocv.CopyMakeBorder(m, &padded, 0, padBottom, 0, padRight, gocv.BorderReplicate, color.RGBA{})
	return padded
}

// matToDense copies an 8-bit single-channel matrix into a gonum dense matrix.
func matToDense(m gocv.Mat) *mat.Dense {
	rows, cols := m.Rows(), m.Cols()
	d := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d.Set(y, x, float64(m.GetUCharAt(y, x)))
		}
	}
	return d
}

// denseToMat8U copies a dense matrix into an 8-bit gocv matrix, clamping
// values to [0,255].
func denseToMat8U(d *mat.Dense) gocv.Mat {
	rows, cols := d.Dims()
	out := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC1)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := d.At(y, x)
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.SetUCharAt(y, x, uint8(v))
		}
	}
	return out
}
