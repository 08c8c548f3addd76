package report

import (
	"bytes"
	"strings"
	"testing"

	"gocv.io/x/gocv"

	"spectral-image-diff/internal/core"
)

func TestWriteNoDifferences(t *testing.T) {
	var buf bytes.Buffer
	res := &core.Result{}

	if err := NewReporter(&buf, false).Write(res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "No se detectaron diferencias significativas.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteRegions(t *testing.T) {
	var buf bytes.Buffer
	res := &core.Result{
		Regions: []core.Region{
			{X: 10, Y: 12, Width: 20, Height: 24},
			{X: 40, Y: 8, Width: 6, Height: 9},
		},
	}

	if err := NewReporter(&buf, false).Write(res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Se detectaron 2 regiones con diferencias significativas:") {
		t.Errorf("missing count line in %q", out)
	}
	if !strings.Contains(out, "Región 1: x=10, y=12, ancho=20, alto=24") {
		t.Errorf("missing first region line in %q", out)
	}
	if !strings.Contains(out, "Región 2: x=40, y=8, ancho=6, alto=9") {
		t.Errorf("missing second region line in %q", out)
	}
}

func TestWriteVerboseMetrics(t *testing.T) {
	diff := gocv.Zeros(8, 8, gocv.MatTypeCV8UC1)
	defer diff.Close()

	var buf bytes.Buffer
	res := &core.Result{
		Order: []string{"dct"},
		Diffs: map[string]gocv.Mat{"dct": diff},
	}

	if err := NewReporter(&buf, true).Write(res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[dct]") {
		t.Errorf("missing transform tag in %q", out)
	}
	if !strings.Contains(out, "mse=0.0000") {
		t.Errorf("missing mse value in %q", out)
	}
}

func TestWriteQuietWithoutVerbose(t *testing.T) {
	diff := gocv.Zeros(8, 8, gocv.MatTypeCV8UC1)
	defer diff.Close()

	var buf bytes.Buffer
	res := &core.Result{
		Order: []string{"dct"},
		Diffs: map[string]gocv.Mat{"dct": diff},
	}

	if err := NewReporter(&buf, false).Write(res); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if strings.Contains(buf.String(), "[dct]") {
		t.Errorf("metrics printed without verbose: %q", buf.String())
	}
}
