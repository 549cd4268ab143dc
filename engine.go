package iconpad

import (
	"fmt"
	"image"
)

// Info describes how an image was, or would be, normalized.
type Info struct {
	// Original is the source width and height.
	Original image.Point
	// Content is the visible content box in source coordinates. It is the
	// zero rectangle when HasContent is false.
	Content    image.Rectangle
	HasContent bool
	// Side is the width and height of the square output.
	Side int
	// Offset is where the cropped content sits on the output canvas.
	Offset image.Point
}

// Normalize crops img to its visible content and centers it on a transparent
// square canvas sized by cfg. cfg is clamped first, so it never causes an
// error. A fully transparent image yields a blank canvas of EmptySide.
func Normalize(img image.Image, cfg Config) (*image.NRGBA, Info, error) {
	src, box, info, err := plan(img, cfg)
	if err != nil {
		return nil, Info{}, err
	}

	if !info.HasContent {
		return image.NewNRGBA(image.Rect(0, 0, info.Side, info.Side)), info, nil
	}

	out, offset := Composite(Crop(src, box), info.Side)
	info.Offset = offset
	return out, info, nil
}

// plan runs mask and bounds detection and sizes the output without
// allocating it.
func plan(img image.Image, cfg Config) (*image.NRGBA, image.Rectangle, Info, error) {
	if img == nil {
		return nil, image.Rectangle{}, Info{}, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, image.Rectangle{}, Info{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	cfg = cfg.Clamp()
	src := toNRGBA(img)
	info := Info{Original: image.Pt(width, height)}

	box, ok := ContentBounds(AlphaMask(src, cfg.AlphaThreshold))
	if !ok {
		info.Side = EmptySide(width, height, cfg)
	} else {
		info.Content = box
		info.HasContent = true
		info.Side = SquareSide(box.Dx(), box.Dy(), cfg)
		info.Offset = image.Pt((info.Side-box.Dx())/2, (info.Side-box.Dy())/2)
	}

	if info.Side > MaxSide {
		return nil, image.Rectangle{}, Info{}, fmt.Errorf("output side %d exceeds limit %d", info.Side, MaxSide)
	}
	return src, box, info, nil
}
