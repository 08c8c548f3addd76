// Fyne result viewer with the six comparison panels
package gui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"gocv.io/x/gocv"

	"spectral-image-diff/internal/core"
)

// Viewer shows a comparison result in a 3-column panel grid: the original
// image, the four difference maps and the annotated image. Presentation
// only; the pipeline never depends on it.
type Viewer struct {
	app    fyne.App
	window fyne.Window
	logger *slog.Logger
}

func NewViewer(logger *slog.Logger) *Viewer {
	a := app.NewWithID("com.spectraldiff.viewer")
	window := a.NewWindow("Spectral Image Diff")
	window.Resize(fyne.NewSize(1500, 900))
	window.CenterOnScreen()

	return &Viewer{
		app:    a,
		window: window,
		logger: logger,
	}
}

// ShowResult builds the panel grid and runs the window until closed.
func (v *Viewer) ShowResult(res *core.Result) error {
	panels := []fyne.CanvasObject{}

	panel, err := v.makePanel("Original", res.Reference)
	if err != nil {
		return err
	}
	panels = append(panels, panel)

	for _, name := range res.Order {
		diff, ok := res.Diffs[name]
		if !ok {
			continue
		}
		panel, err := v.makePanel("Diferencia "+strings.ToUpper(name), diff)
		if err != nil {
			return err
		}
		panels = append(panels, panel)
	}

	panel, err = v.makePanel("Diferencias detectadas", res.Annotated)
	if err != nil {
		return err
	}
	panels = append(panels, panel)

	v.logger.Info("Showing result viewer", "panels", len(panels))

	v.window.SetContent(container.NewGridWithColumns(3, panels...))
	v.window.ShowAndRun()
	return nil
}

func (v *Viewer) makePanel(title string, m gocv.Mat) (fyne.CanvasObject, error) {
	img, err := m.ToImage()
	if err != nil {
		return nil, fmt.Errorf("panel %q: %w", title, err)
	}

	view := canvas.NewImageFromImage(img)
	view.FillMode = canvas.ImageFillContain
	view.SetMinSize(fyne.NewSize(440, 300))

	label := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(nil, label, nil, nil, view), nil
}
