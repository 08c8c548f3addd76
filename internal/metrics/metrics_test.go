package metrics

import (
	"math"
	"testing"

	"gocv.io/x/gocv"
)

func constantDiff(rows, cols int, value uint8) gocv.Mat {
	m := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC1)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.SetUCharAt(y, x, value)
		}
	}
	return m
}

func TestZeroDiffMap(t *testing.T) {
	diff := constantDiff(8, 8, 0)
	defer diff.Close()

	e := NewEvaluator()

	if v, err := e.Calculate("mse", diff); err != nil || v != 0 {
		t.Errorf("mse = %v (err %v), want 0", v, err)
	}
	if v, err := e.Calculate("psnr", diff); err != nil || !math.IsInf(v, 1) {
		t.Errorf("psnr = %v (err %v), want +Inf", v, err)
	}
	if v, err := e.Calculate("mean_abs", diff); err != nil || v != 0 {
		t.Errorf("mean_abs = %v (err %v), want 0", v, err)
	}
	if v, err := e.Calculate("nonzero_ratio", diff); err != nil || v != 0 {
		t.Errorf("nonzero_ratio = %v (err %v), want 0", v, err)
	}
}

func TestConstantDiffMap(t *testing.T) {
	diff := constantDiff(4, 4, 10)
	defer diff.Close()

	e := NewEvaluator()

	if v, _ := e.Calculate("mse", diff); v != 100 {
		t.Errorf("mse = %v, want 100", v)
	}
	if v, _ := e.Calculate("mean_abs", diff); v != 10 {
		t.Errorf("mean_abs = %v, want 10", v)
	}
	if v, _ := e.Calculate("nonzero_ratio", diff); v != 1 {
		t.Errorf("nonzero_ratio = %v, want 1", v)
	}

	wantPSNR := 20 * math.Log10(255.0/10.0)
	if v, _ := e.Calculate("psnr", diff); math.Abs(v-wantPSNR) > 1e-9 {
		t.Errorf("psnr = %v, want %v", v, wantPSNR)
	}
}

func TestUnknownMetric(t *testing.T) {
	diff := constantDiff(2, 2, 0)
	defer diff.Close()

	if _, err := NewEvaluator().Calculate("ssim", diff); err == nil {
		t.Error("expected error for unregistered metric")
	}
}

func TestEmptyDiffRejected(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	e := NewEvaluator()
	for _, name := range e.Names() {
		if _, err := e.Calculate(name, empty); err == nil {
			t.Errorf("%s accepted an empty map", name)
		}
	}
}

func TestNamesOrder(t *testing.T) {
	want := []string{"mse", "psnr", "mean_abs", "nonzero_ratio"}
	got := NewEvaluator().Names()

	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCalculateAll(t *testing.T) {
	diff := constantDiff(4, 4, 10)
	defer diff.Close()

	results := NewEvaluator().CalculateAll(diff)
	if len(results) != 4 {
		t.Errorf("CalculateAll returned %d metrics, want 4", len(results))
	}
}
