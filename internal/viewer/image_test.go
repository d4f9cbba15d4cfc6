package viewer_test

import (
	"testing"

	"shareview/internal/viewer"

	"github.com/stretchr/testify/assert"
)

func TestImageRotationCycles(t *testing.T) {
	v := viewer.NewImageView()
	assert.Equal(t, 0, v.Rotation())

	v = v.RotateRight()
	assert.Equal(t, 90, v.Rotation())

	// Four right turns come back to upright
	assert.Equal(t, 0, viewer.NewImageView().RotateRight().RotateRight().RotateRight().RotateRight().Rotation())

	// Left inverts right
	assert.Equal(t, 0, viewer.NewImageView().RotateRight().RotateLeft().Rotation())
	assert.Equal(t, 270, viewer.NewImageView().RotateLeft().Rotation())
}

func TestImageZoomSaturates(t *testing.T) {
	v := viewer.NewImageView()
	for i := 0; i < 30; i++ {
		v = v.ZoomIn()
	}
	assert.InDelta(t, viewer.ImgZoomMax, v.Zoom(), 1e-9)

	for i := 0; i < 60; i++ {
		v = v.ZoomOut()
	}
	assert.InDelta(t, viewer.ImgZoomMin, v.Zoom(), 1e-9)

	assert.InDelta(t, 1.0, v.ZoomActual().Zoom(), 1e-9)
}

func TestImageFit(t *testing.T) {
	// 2000x1000 image in an 800x600 viewport: width is the limiting
	// dimension, 800/2000 * 0.9 = 0.36
	v := viewer.NewImageView().Fit(800, 600, 2000, 1000)
	assert.InDelta(t, 0.36, v.Zoom(), 1e-9)

	// Small images never upscale past 90%
	v = viewer.NewImageView().Fit(800, 600, 100, 100)
	assert.InDelta(t, 0.9, v.Zoom(), 1e-9)

	// Rotation swaps the dimensions: sideways, height 2000 limits,
	// 600/2000 * 0.9 = 0.27
	v = viewer.NewImageView().RotateRight().Fit(800, 600, 2000, 1000)
	assert.InDelta(t, 0.27, v.Zoom(), 1e-9)
}

func TestImageFitDegenerateSizes(t *testing.T) {
	v := viewer.NewImageView()
	assert.InDelta(t, 1.0, v.Fit(0, 600, 100, 100).Zoom(), 1e-9)
	assert.InDelta(t, 1.0, v.Fit(800, 600, 0, 100).Zoom(), 1e-9)
}
