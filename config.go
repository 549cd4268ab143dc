package iconpad

const (
	// DefaultAlphaThreshold is the alpha value a pixel must exceed to count
	// as visible content.
	DefaultAlphaThreshold = 8
	// DefaultPadRatio is the margin added around the content's longest side.
	DefaultPadRatio = 0.06
	// DefaultMinSize is the smallest output side length.
	DefaultMinSize = 1
)

// Config holds the pipeline parameters. Out-of-range values are clamped by
// Clamp rather than rejected, so a single bad flag never aborts a batch.
type Config struct {
	AlphaThreshold int
	PadRatio       float64
	MinSize        int
}

// DefaultConfig returns the parameters used by the iconpad command when no
// flags are given.
func DefaultConfig() Config {
	return Config{
		AlphaThreshold: DefaultAlphaThreshold,
		PadRatio:       DefaultPadRatio,
		MinSize:        DefaultMinSize,
	}
}

// Clamp returns a copy of c with AlphaThreshold in [0, 255], PadRatio >= 0
// and MinSize >= 1. A NaN PadRatio is treated as 0.
func (c Config) Clamp() Config {
	if c.AlphaThreshold < 0 {
		c.AlphaThreshold = 0
	}
	if c.AlphaThreshold > 255 {
		c.AlphaThreshold = 255
	}
	// NaN fails every comparison, so test for the valid range instead.
	if !(c.PadRatio >= 0) {
		c.PadRatio = 0
	}
	if c.MinSize < 1 {
		c.MinSize = 1
	}
	return c
}
