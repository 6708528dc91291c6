// Package imaging decodes and downscales generated logo rasters.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Inspect decodes just enough of the data to report dimensions and format
// ("png", "jpeg", "webp", ...).
func Inspect(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("imaging: decode config: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}

// PNGPreview decodes the image and re-encodes it as PNG, downscaling with
// bilinear interpolation when either dimension exceeds maxDim. Aspect ratio
// is preserved.
func PNGPreview(data []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxDim > 0 && (width > maxDim || height > maxDim) {
		var newW, newH int
		if width > height {
			newW = maxDim
			newH = (height * maxDim) / width
		} else {
			newH = maxDim
			newW = (width * maxDim) / height
		}
		if newW == 0 {
			newW = 1
		}
		if newH == 0 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imaging: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
