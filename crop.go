package iconpad

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// BoundsError reports a rectangle that does not fit inside the image it is
// applied to. Crop and Composite panic with it: boxes handed to them are
// derived from the same image, so a mismatch is a logic defect.
type BoundsError struct {
	Box    image.Rectangle
	Bounds image.Rectangle
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("rectangle %v out of bounds %v", e.Box, e.Bounds)
}

// Crop returns a copy of the pixels of img inside box. The result has its
// origin at (0, 0) and dimensions box.Dx() x box.Dy(). For *image.NRGBA
// input the bytes are copied verbatim. Crop panics with *BoundsError when
// box is empty or not contained in img.Bounds().
func Crop(img image.Image, box image.Rectangle) *image.NRGBA {
	if box.Empty() || !box.In(img.Bounds()) {
		panic(&BoundsError{Box: box, Bounds: img.Bounds()})
	}

	src := toNRGBA(img)
	dst := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	rowLen := 4 * box.Dx()
	for y := 0; y < box.Dy(); y++ {
		from := src.PixOffset(box.Min.X, box.Min.Y+y)
		to := dst.PixOffset(0, y)
		copy(dst.Pix[to:to+rowLen], src.Pix[from:from+rowLen])
	}
	return dst
}

// toNRGBA returns img as non-premultiplied RGBA. An *image.NRGBA is returned
// as-is and must not be modified by the caller.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}
