// Comparison result container with explicit Mat ownership
package core

import "gocv.io/x/gocv"

// Region is one detected difference bounding box in image coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Result holds every map produced by one comparison run. The Result owns
// all of its matrices; call Close when done.
type Result struct {
	// Reference is the first image as loaded, defining the working
	// dimensions of every map below.
	Reference gocv.Mat

	// Diffs maps transform names to absolute difference maps. Order lists
	// the names in evaluation order for panels and reports.
	Diffs map[string]gocv.Mat
	Order []string

	// Combined is the bitwise OR of the difference maps selected for
	// detection. Mask is Combined thresholded to a binary image.
	Combined gocv.Mat
	Mask     gocv.Mat

	// Annotated is a color copy of the reference with the surviving
	// regions outlined.
	Annotated gocv.Mat

	// Regions lists surviving bounding boxes in contour-discovery order.
	// The order is implementation-defined; treat the list as unordered.
	Regions []Region
}

// Close releases all matrices held by the result.
func (r *Result) Close() {
	if r == nil {
		return
	}

	closeMat(&r.Reference)
	for name, diff := range r.Diffs {
		closeMat(&diff)
		delete(r.Diffs, name)
	}
	closeMat(&r.Combined)
	closeMat(&r.Mask)
	closeMat(&r.Annotated)
}

func closeMat(m *gocv.Mat) {
	if !m.Empty() {
		m.Close()
	}
}
