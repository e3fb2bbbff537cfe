// Package cluster implements the ClusterContours external collaborator:
// connected-component contour extraction over the hole-erased binary
// image, treated as a black box by the path walker.
package cluster

import (
	"shapefill/internal/raster"
	"shapefill/pkg/geometry"

	"gocv.io/x/gocv"
)

// minContourLength drops specks whose contour is too short to carry a
// meaningful boundary segment.
const minContourLength = 5

// Component is one connected foreground region's contour, already
// offset into the image's coordinate frame.
type Component struct {
	Origin  geometry.PointInt
	Contour []geometry.PointInt
}

// Contours runs connected-component contour extraction over img,
// returning one Component per region whose contour length exceeds the
// speck-suppression threshold. No simplification is applied here — that
// is the walker's job, once segments have been carved out of each
// contour.
func Contours(img raster.Image) ([]Component, error) {
	mat := toMat(img)
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalList, gocv.ChainApproxNone)
	defer contours.Close()

	var out []Component
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)
		if contour.Size() <= minContourLength {
			continue
		}
		pts := make([]geometry.PointInt, contour.Size())
		for j := 0; j < contour.Size(); j++ {
			p := contour.At(j)
			pts[j] = geometry.PointInt{X: p.X, Y: p.Y}
		}
		out = append(out, Component{Contour: pts})
	}
	return out, nil
}

// toMat rasterizes the predicate into an 8-bit single-channel gocv.Mat,
// the same mask-construction step the teacher's vectorizer performs
// before handing a mask to gocv.FindContours.
func toMat(img raster.Image) gocv.Mat {
	w, h := img.Width(), img.Height()
	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.IsForeground(x, y) {
				mat.SetUCharAt(y, x, 255)
			}
		}
	}
	return mat
}
