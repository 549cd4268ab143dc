package iconpad

import "image"

// ContentBounds returns the tightest rectangle enclosing every mask pixel
// equal to 255. The rectangle is in the mask's coordinate space with an
// exclusive Max. ok is false when the mask holds no such pixel, which is the
// expected result for a fully transparent image.
func ContentBounds(mask *image.Alpha) (box image.Rectangle, ok bool) {
	bounds := mask.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := mask.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			if mask.Pix[row+x] != 0xff {
				continue
			}
			px := bounds.Min.X + x
			if px < minX {
				minX = px
			}
			if px > maxX {
				maxX = px
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
