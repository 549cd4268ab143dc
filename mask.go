package iconpad

import (
	"image"
	"image/color"
)

// AlphaMask converts the alpha channel of img into a binary visibility mask of
// the same bounds. A mask pixel is 255 when the source alpha is strictly
// greater than threshold and 0 otherwise. threshold is expected to be
// clamped to [0, 255] already.
func AlphaMask(img image.Image, threshold int) *image.Alpha {
	bounds := img.Bounds()
	mask := image.NewAlpha(bounds)

	// Fast path for the layout every decoded PNG with transparency uses.
	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.PixOffset(bounds.Min.X, y)
			out := mask.PixOffset(bounds.Min.X, y)
			for x := 0; x < bounds.Dx(); x++ {
				if int(src.Pix[row+4*x+3]) > threshold {
					mask.Pix[out+x] = 0xff
				}
			}
		}
		return mask
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
			if int(a) > threshold {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
