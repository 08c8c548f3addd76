// Metrics over difference maps
package metrics

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Metric defines the interface for difference-map metrics
type Metric interface {
	// Calculate computes the metric over an 8-bit difference map
	Calculate(diff gocv.Mat) (float64, error)

	// GetName returns the metric name
	GetName() string

	// GetDescription returns the metric description
	GetDescription() string
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
	order   []string
}

// NewEvaluator creates an evaluator with the default metric set
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}

	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	e.Register("mean_abs", NewMeanAbs())
	e.Register("nonzero_ratio", NewNonzeroRatio())

	return e
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	if _, exists := e.metrics[name]; !exists {
		e.order = append(e.order, name)
	}
	e.metrics[name] = metric
}

// Names returns registered metric names in registration order
func (e *Evaluator) Names() []string {
	names := make([]string, len(e.order))
	copy(names, e.order)
	return names
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, diff gocv.Mat) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}

	return metric.Calculate(diff)
}

// CalculateAll calculates every registered metric over one difference map
func (e *Evaluator) CalculateAll(diff gocv.Mat) map[string]float64 {
	results := make(map[string]float64)

	for name, metric := range e.metrics {
		if value, err := metric.Calculate(diff); err == nil {
			results[name] = value
		}
	}

	return results
}
