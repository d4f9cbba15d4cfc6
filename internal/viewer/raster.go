package viewer

import (
	"image"
	"os"

	xdraw "golang.org/x/image/draw"

	"shareview/internal/errors"

	// Decoders for every image extension the browser classifies.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes an image file in any registered format.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, errors.NewPathError("image not found", path, errors.NotFound, err)
		case os.IsPermission(err):
			return nil, errors.NewPathError("permission denied", path, errors.AccessDenied, err)
		default:
			return nil, errors.NewPathError("error opening image", path, errors.RenderFailed, err)
		}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.NewPathError("failed to decode image", path, errors.RenderFailed, err)
	}
	return img, nil
}

// Render applies the view's rotation and zoom to src. Rotation happens
// first, so fit zoom computed over the rotated bounding box comes out
// right for sideways images.
func Render(src image.Image, view ImageView) image.Image {
	return Scale(Rotate(src, view.Rotation()), view.Zoom())
}

// Rotate returns src rotated clockwise by degrees, which must be one of
// 0, 90, 180 or 270. The result is re-anchored at the origin.
func Rotate(src image.Image, degrees int) image.Image {
	if degrees == 0 {
		return src
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	var dst *image.RGBA
	if degrees == 180 {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.At(b.Min.X+x, b.Min.Y+y)
			switch degrees {
			case 90:
				dst.Set(h-1-y, x, c)
			case 180:
				dst.Set(w-1-x, h-1-y, c)
			case 270:
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}

// Scale resamples src by factor with Catmull-Rom interpolation. A factor
// of 1 returns src untouched; the result is never smaller than 1x1.
func Scale(src image.Image, factor float64) image.Image {
	if factor == 1.0 {
		return src
	}

	b := src.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
