// Spectral transforms used as feature extractors for image comparison
package transforms

import (
	"gocv.io/x/gocv"

	"spectral-image-diff/internal/config"
)

// Transform maps a grayscale image to an 8-bit feature map of the same
// dimensions. Implementations must not retain or close the input.
type Transform interface {
	Name() string
	Apply(input gocv.Mat) (gocv.Mat, error)
}

// Bank returns the transform set in its fixed evaluation order. The order
// also fixes the panel layout and the per-transform report order.
func Bank(cfg *config.Config) []Transform {
	return []Transform{
		NewDCT(),
		NewDWT(),
		NewSVD(),
		NewNMF(cfg.NMFComponents, cfg.NMFIterations, cfg.NMFSeed),
	}
}
