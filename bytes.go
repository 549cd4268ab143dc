package iconpad

import (
	"bytes"
	"fmt"
)

// NormalizeBytes decodes raw image bytes, normalizes the image and returns it
// encoded as PNG.
func NormalizeBytes(data []byte, cfg Config) ([]byte, Info, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, Info{}, err
	}

	out, info, err := Normalize(img, cfg)
	if err != nil {
		return nil, Info{}, err
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		return nil, Info{}, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), info, nil
}

// InspectBytes decodes raw image bytes and delegates to Inspect.
func InspectBytes(data []byte, cfg Config) (Report, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return Report{}, err
	}
	return Inspect(img, cfg)
}
