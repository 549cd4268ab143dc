package iconpad

import (
	"image"
	"math"
)

// MaxSide caps the output canvas side so an extreme pad ratio cannot request
// an unbounded allocation.
const MaxSide = 1 << 16

// EmptySide is the output side for an image without visible content: the
// original footprint squared, but never below cfg.MinSize.
func EmptySide(width, height int, cfg Config) int {
	cfg = cfg.Clamp()
	return max(width, height, cfg.MinSize)
}

// SquareSide computes the canvas side for content of the given size. The
// longest content edge is grown by cfg.PadRatio and rounded half to even;
// the result is never smaller than cfg.MinSize nor than the content itself.
func SquareSide(contentWidth, contentHeight int, cfg Config) int {
	cfg = cfg.Clamp()
	content := max(contentWidth, contentHeight)

	scaled := math.RoundToEven(float64(content) * (1 + cfg.PadRatio))
	base := MaxSide + 1
	if scaled <= MaxSide {
		base = int(scaled)
	}
	return max(base, cfg.MinSize, content)
}

// Composite centers content on a new, fully transparent side x side canvas
// and returns the canvas together with the paste offset. Odd remainders are
// floored, so content leans at most one pixel toward the top-left. The
// destination is empty, so content pixels are copied unchanged. Composite
// panics with *BoundsError if content does not fit.
func Composite(content *image.NRGBA, side int) (*image.NRGBA, image.Point) {
	cb := content.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))

	offset := image.Pt((side-cb.Dx())/2, (side-cb.Dy())/2)
	target := image.Rectangle{Min: offset, Max: offset.Add(cb.Size())}
	if !target.In(canvas.Bounds()) {
		panic(&BoundsError{Box: target, Bounds: canvas.Bounds()})
	}

	rowLen := 4 * cb.Dx()
	for y := 0; y < cb.Dy(); y++ {
		from := content.PixOffset(cb.Min.X, cb.Min.Y+y)
		to := canvas.PixOffset(offset.X, offset.Y+y)
		copy(canvas.Pix[to:to+rowLen], content.Pix[from:from+rowLen])
	}
	return canvas, offset
}
