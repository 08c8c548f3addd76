// Concrete implementations of difference-map metrics
package metrics

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// MSE implements mean squared error. A difference map already holds the
// absolute per-pixel differences, so the mean of its squares is the MSE
// between the two transform outputs it came from.
type MSE struct{}

// NewMSE creates a new MSE metric
func NewMSE() *MSE {
	return &MSE{}
}

func (m *MSE) Calculate(diff gocv.Mat) (float64, error) {
	if diff.Empty() {
		return 0, fmt.Errorf("empty difference map")
	}

	sum := 0.0
	for y := 0; y < diff.Rows(); y++ {
		for x := 0; x < diff.Cols(); x++ {
			v := float64(diff.GetUCharAt(y, x))
			sum += v * v
		}
	}

	return sum / float64(diff.Rows()*diff.Cols()), nil
}

func (m *MSE) GetName() string {
	return "MSE"
}

func (m *MSE) GetDescription() string {
	return "Mean squared error of the difference map"
}

// PSNR implements Peak Signal-to-Noise Ratio over a difference map
type PSNR struct {
	mse *MSE
}

// NewPSNR creates a new PSNR metric
func NewPSNR() *PSNR {
	return &PSNR{mse: NewMSE()}
}

func (p *PSNR) Calculate(diff gocv.Mat) (float64, error) {
	mse, err := p.mse.Calculate(diff)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil // Perfect match
	}

	maxVal := 255.0
	return 20 * math.Log10(maxVal/math.Sqrt(mse)), nil
}

func (p *PSNR) GetName() string {
	return "PSNR"
}

func (p *PSNR) GetDescription() string {
	return "Peak signal-to-noise ratio implied by the difference map"
}

// MeanAbs is the mean absolute per-pixel difference
type MeanAbs struct{}

// NewMeanAbs creates a new mean absolute difference metric
func NewMeanAbs() *MeanAbs {
	return &MeanAbs{}
}

func (m *MeanAbs) Calculate(diff gocv.Mat) (float64, error) {
	if diff.Empty() {
		return 0, fmt.Errorf("empty difference map")
	}

	sum := 0.0
	for y := 0; y < diff.Rows(); y++ {
		for x := 0; x < diff.Cols(); x++ {
			sum += float64(diff.GetUCharAt(y, x))
		}
	}

	return sum / float64(diff.Rows()*diff.Cols()), nil
}

func (m *MeanAbs) GetName() string {
	return "Mean absolute difference"
}

func (m *MeanAbs) GetDescription() string {
	return "Average per-pixel absolute difference"
}

// NonzeroRatio is the fraction of pixels with any difference at all
type NonzeroRatio struct{}

// NewNonzeroRatio creates a new nonzero ratio metric
func NewNonzeroRatio() *NonzeroRatio {
	return &NonzeroRatio{}
}

func (n *NonzeroRatio) Calculate(diff gocv.Mat) (float64, error) {
	if diff.Empty() {
		return 0, fmt.Errorf("empty difference map")
	}

	total := diff.Rows() * diff.Cols()
	return float64(gocv.CountNonZero(diff)) / float64(total), nil
}

func (n *NonzeroRatio) GetName() string {
	return "Nonzero ratio"
}

func (n *NonzeroRatio) GetDescription() string {
	return "Fraction of differing pixels"
}
