package stac

// TransformFromBbox computes the affine geotransform mapping pixel
// row/column space onto the projected coordinates of bbox, for an image of
// the given (rows, cols) pixel shape. The result uses the six-element
// [a, b, c, d, e, f] layout of the projection extension, where c/f are the
// projected coordinates of the upper-left corner.
func TransformFromBbox(bbox []float64, shape []int) []float64 {
	rows, cols := float64(shape[0]), float64(shape[1])
	return []float64{
		(bbox[2] - bbox[0]) / cols, 0.0, bbox[0],
		0.0, (bbox[1] - bbox[3]) / rows, bbox[3],
	}
}
