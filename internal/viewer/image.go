package viewer

// Image viewer zoom bounds and step. Images zoom out much further than
// documents so large photos can be inspected whole.
const (
	ImgZoomMin  = 0.1
	ImgZoomMax  = 5.0
	ImgZoomStep = 0.2
)

// ImageView is the zoom and rotation state of one open image. Rotation
// is clockwise degrees, always one of 0, 90, 180, 270.
type ImageView struct {
	zoom     float64
	rotation int
}

// NewImageView creates the state for a freshly opened image: unrotated
// at 100% zoom. Callers typically follow up with Fit once the viewport
// size is known.
func NewImageView() ImageView {
	return ImageView{zoom: 1.0}
}

// Zoom returns the current zoom factor.
func (v ImageView) Zoom() float64 {
	return v.zoom
}

// Rotation returns the clockwise rotation in degrees.
func (v ImageView) Rotation() int {
	return v.rotation
}

// RotateRight rotates 90 degrees clockwise.
func (v ImageView) RotateRight() ImageView {
	v.rotation = (v.rotation + 90) % 360
	return v
}

// RotateLeft rotates 90 degrees counter-clockwise.
func (v ImageView) RotateLeft() ImageView {
	v.rotation = (v.rotation + 270) % 360
	return v
}

// ZoomIn increases zoom one step, saturating at ImgZoomMax.
func (v ImageView) ZoomIn() ImageView {
	v.zoom = minFloat(v.zoom+ImgZoomStep, ImgZoomMax)
	return v
}

// ZoomOut decreases zoom one step, saturating at ImgZoomMin.
func (v ImageView) ZoomOut() ImageView {
	v.zoom = maxFloat(v.zoom-ImgZoomStep, ImgZoomMin)
	return v
}

// ZoomActual returns to 100%, pixel for pixel.
func (v ImageView) ZoomActual() ImageView {
	v.zoom = 1.0
	return v
}

// Fit sets the zoom so the rotated image fills at most 90% of the
// viewport in both dimensions, never upscaling past 100%. Degenerate
// sizes leave the zoom unchanged.
func (v ImageView) Fit(viewportW, viewportH, imageW, imageH int) ImageView {
	if v.rotation == 90 || v.rotation == 270 {
		imageW, imageH = imageH, imageW
	}
	if viewportW <= 0 || viewportH <= 0 || imageW <= 0 || imageH <= 0 {
		return v
	}
	scale := minFloat(float64(viewportW)/float64(imageW), float64(viewportH)/float64(imageH))
	v.zoom = minFloat(scale, 1.0) * 0.9
	return v
}
