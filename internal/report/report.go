// Human-readable region report
package report

import (
	"fmt"
	"io"

	"spectral-image-diff/internal/core"
	"spectral-image-diff/internal/metrics"
)

// Reporter writes the detection report to an injected writer, keeping the
// computation pipeline free of any output dependency.
type Reporter struct {
	out       io.Writer
	verbose   bool
	evaluator *metrics.Evaluator
}

func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{
		out:       out,
		verbose:   verbose,
		evaluator: metrics.NewEvaluator(),
	}
}

// Write prints the region list, or the no-difference message when nothing
// survived filtering. Regions are numbered from 1 in discovery order.
func (r *Reporter) Write(res *core.Result) error {
	if len(res.Regions) == 0 {
		if _, err := fmt.Fprintln(r.out, "No se detectaron diferencias significativas."); err != nil {
			return err
		}
		return r.writeMetrics(res)
	}

	if _, err := fmt.Fprintf(r.out, "Se detectaron %d regiones con diferencias significativas:\n", len(res.Regions)); err != nil {
		return err
	}
	for i, reg := range res.Regions {
		if _, err := fmt.Fprintf(r.out, "  Región %d: x=%d, y=%d, ancho=%d, alto=%d\n",
			i+1, reg.X, reg.Y, reg.Width, reg.Height); err != nil {
			return err
		}
	}

	return r.writeMetrics(res)
}

// writeMetrics appends per-transform metric lines in verbose mode.
func (r *Reporter) writeMetrics(res *core.Result) error {
	if !r.verbose {
		return nil
	}

	for _, name := range res.Order {
		diff, ok := res.Diffs[name]
		if !ok {
			continue
		}

		if _, err := fmt.Fprintf(r.out, "  [%s]", name); err != nil {
			return err
		}
		for _, metricName := range r.evaluator.Names() {
			value, err := r.evaluator.Calculate(metricName, diff)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(r.out, " %s=%.4f", metricName, value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.out); err != nil {
			return err
		}
	}

	return nil
}
