package iconpad

import "image"

// Report is the dry-run result of Inspect.
type Report struct {
	Info
	// Normalized is true when running Normalize would reproduce the input
	// geometry: the image is already square at the target side with its
	// content at the target offset.
	Normalized bool
	// BorderRatio is the fraction of the source area outside the content
	// box, in [0, 1]. It is 1 for a fully transparent image.
	BorderRatio float64
}

// Inspect reports what Normalize would do to img without building the output.
func Inspect(img image.Image, cfg Config) (Report, error) {
	_, _, info, err := plan(img, cfg)
	if err != nil {
		return Report{}, err
	}

	r := Report{Info: info, BorderRatio: 1}
	square := info.Original.X == info.Side && info.Original.Y == info.Side

	if !info.HasContent {
		r.Normalized = square
		return r, nil
	}

	total := float64(info.Original.X * info.Original.Y)
	r.BorderRatio = 1 - float64(info.Content.Dx()*info.Content.Dy())/total

	origin := img.Bounds().Min
	r.Normalized = square && info.Content.Min.Sub(origin) == info.Offset
	return r, nil
}
