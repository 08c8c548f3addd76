// Grayscale image loading and pair alignment
package io

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"gocv.io/x/gocv"
)

// ImageLoader handles image file operations
type ImageLoader struct {
	logger *slog.Logger
}

func NewImageLoader(logger *slog.Logger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// LoadGrayscale reads an image file as a single-channel 8-bit matrix.
func (il *ImageLoader) LoadGrayscale(filepath string) (gocv.Mat, error) {
	il.logger.Debug("Loading image as grayscale", "filepath", filepath)

	if !il.isSupportedImageFormat(filepath) {
		return gocv.NewMat(), fmt.Errorf("unsupported image format: %s", filepath)
	}

	mat := gocv.IMRead(filepath, gocv.IMReadGrayScale)
	if mat.Empty() {
		return gocv.NewMat(), fmt.Errorf("failed to load image: %s", filepath)
	}

	il.logger.Info("Grayscale image loaded",
		"filepath", filepath,
		"width", mat.Cols(),
		"height", mat.Rows())

	return mat, nil
}

// AlignPair returns a copy of second resized to first's dimensions. The
// resize is one-directional with no aspect-ratio correction; the first
// image defines the working dimensions of the whole run.
func (il *ImageLoader) AlignPair(first, second gocv.Mat) (gocv.Mat, error) {
	if first.Empty() || second.Empty() {
		return gocv.NewMat(), fmt.Errorf("cannot align empty images")
	}
	if first.Cols() <= 0 || first.Rows() <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid reference dimensions: %dx%d",
			first.Cols(), first.Rows())
	}

	if first.Cols() == second.Cols() && first.Rows() == second.Rows() {
		return second.Clone(), nil
	}

	il.logger.Info("Image dimensions differ, resizing second image",
		"first", fmt.Sprintf("%dx%d", first.Cols(), first.Rows()),
		"second", fmt.Sprintf("%dx%d", second.Cols(), second.Rows()))

	aligned := gocv.NewMat()
	gocv.Resize(second, &aligned, image.Pt(first.Cols(), first.Rows()), 0, 0, gocv.InterpolationLinear)
	return aligned, nil
}

// SaveImage writes a matrix to an image file.
func (il *ImageLoader) SaveImage(mat gocv.Mat, filepath string) error {
	il.logger.Debug("Saving image", "filepath", filepath)

	if mat.Empty() {
		return fmt.Errorf("cannot save empty image")
	}

	if !il.isSupportedImageFormat(filepath) {
		return fmt.Errorf("unsupported image format: %s", filepath)
	}

	if !gocv.IMWrite(filepath, mat) {
		return fmt.Errorf("failed to save image: %s", filepath)
	}

	il.logger.Info("Image saved",
		"filepath", filepath,
		"width", mat.Cols(),
		"height", mat.Rows())

	return nil
}

func (il *ImageLoader) isSupportedImageFormat(filepath string) bool {
	ext := strings.ToLower(getFileExtension(filepath))
	supportedFormats := []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}

func getFileExtension(filepath string) string {
	for i := len(filepath) - 1; i >= 0; i-- {
		if filepath[i] == '.' {
			return filepath[i:]
		}
		if filepath[i] == '/' || filepath[i] == '\\' {
			break
		}
	}
	return ""
}
