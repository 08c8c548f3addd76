// Region extraction from the combined difference map
package core

import (
	"image/color"
	"log/slog"

	"gocv.io/x/gocv"

	"spectral-image-diff/internal/config"
)

// Extractor thresholds a combined difference map, contours the binary mask
// and keeps the bounding boxes large enough to matter.
type Extractor struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewExtractor(cfg *config.Config, logger *slog.Logger) *Extractor {
	return &Extractor{
		cfg:    cfg,
		logger: logger,
	}
}

// Extract returns the binary mask, a color copy of the reference with the
// surviving rectangles outlined, and the region list. Both width and
// height must strictly exceed the configured minimums for a rectangle to
// survive.
func (e *Extractor) Extract(combined, reference gocv.Mat) (gocv.Mat, gocv.Mat, []Region) {
	mask := gocv.NewMat()
	gocv.Threshold(combined, &mask, float32(e.cfg.Threshold), 255, gocv.ThresholdBinary)

	annotated := gocv.NewMat()
	gocv.CvtColor(reference, &annotated, gocv.ColorGrayToBGR)

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var regions []Region
	dropped := 0
	for i := 0; i < contours.Size(); i++ {
		rect := gocv.BoundingRect(contours.At(i))
		if rect.Dx() <= e.cfg.MinRegionWidth || rect.Dy() <= e.cfg.MinRegionHeight {
			dropped++
			continue
		}

		gocv.Rectangle(&annotated, rect, color.RGBA{R: 255}, 2)
		regions = append(regions, Region{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		})
	}

	e.logger.Debug("Regions extracted",
		"threshold", e.cfg.Threshold,
		"contours", contours.Size(),
		"kept", len(regions),
		"dropped", dropped)

	return mask, annotated, regions
}
