// Transform-and-diff pipeline
package core

import (
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"

	"spectral-image-diff/internal/config"
	"spectral-image-diff/internal/transforms"
)

// Pipeline runs the transform bank over an aligned image pair and reduces
// the outputs to difference regions. It is stateless across runs; every
// Compare call produces an independent Result.
type Pipeline struct {
	cfg       *config.Config
	bank      []transforms.Transform
	extractor *Extractor
	logger    *slog.Logger
}

func NewPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		bank:      transforms.Bank(cfg),
		extractor: NewExtractor(cfg, logger),
		logger:    logger,
	}
}

// Compare diffs two aligned grayscale images through every transform,
// combines the selected difference maps and extracts difference regions.
// The caller keeps ownership of both inputs.
func (p *Pipeline) Compare(first, second gocv.Mat) (*Result, error) {
	if first.Empty() || second.Empty() {
		return nil, fmt.Errorf("pipeline: empty input image")
	}
	if first.Cols() != second.Cols() || first.Rows() != second.Rows() {
		return nil, fmt.Errorf("pipeline: images must be aligned before comparison: %dx%d vs %dx%d",
			first.Cols(), first.Rows(), second.Cols(), second.Rows())
	}

	res := &Result{
		Reference: first.Clone(),
		Diffs:     make(map[string]gocv.Mat, len(p.bank)),
	}

	for _, t := range p.bank {
		diff, err := p.transformDiff(t, first, second)
		if err != nil {
			res.Reference.Close()
			for _, d := range res.Diffs {
				d.Close()
			}
			return nil, err
		}
		res.Diffs[t.Name()] = diff
		res.Order = append(res.Order, t.Name())
	}

	res.Combined = p.combine(res.Diffs)
	res.Mask, res.Annotated, res.Regions = p.extractor.Extract(res.Combined, first)

	p.logger.Info("Comparison finished",
		"width", first.Cols(),
		"height", first.Rows(),
		"regions", len(res.Regions))

	return res, nil
}

func (p *Pipeline) transformDiff(t transforms.Transform, first, second gocv.Mat) (gocv.Mat, error) {
	out1, err := t.Apply(first)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("transform %s on first image: %w", t.Name(), err)
	}
	defer out1.Close()

	out2, err := t.Apply(second)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("transform %s on second image: %w", t.Name(), err)
	}
	defer out2.Close()

	diff := gocv.NewMat()
	gocv.AbsDiff(out1, out2, &diff)

	p.logger.Debug("Transform diff computed",
		"transform", t.Name(),
		"nonzero", gocv.CountNonZero(diff))

	return diff, nil
}

// combine ORs the DCT, DWT and NMF difference maps. The SVD map joins only
// when configured; it is computed and displayed either way.
func (p *Pipeline) combine(diffs map[string]gocv.Mat) gocv.Mat {
	selected := []string{"dct", "dwt", "nmf"}
	if p.cfg.IncludeSVD {
		selected = append(selected, "svd")
	}

	first := diffs[selected[0]]
	combined := first.Clone()
	for _, name := range selected[1:] {
		gocv.BitwiseOr(combined, diffs[name], &combined)
	}
	return combined
}
