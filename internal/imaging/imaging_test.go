package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	data := encodePNG(t, 64, 32)
	w, h, format, err := Inspect(data)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if w != 64 || h != 32 || format != "png" {
		t.Fatalf("Inspect = %dx%d %q", w, h, format)
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	if _, _, _, err := Inspect([]byte("not an image")); err == nil {
		t.Fatal("expected error")
	}
}

func TestPNGPreviewDownscales(t *testing.T) {
	data := encodePNG(t, 200, 100)
	out, err := PNGPreview(data, 50)
	if err != nil {
		t.Fatalf("PNGPreview: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if cfg.Width != 50 || cfg.Height != 25 {
		t.Fatalf("preview = %dx%d, want 50x25", cfg.Width, cfg.Height)
	}
}

func TestPNGPreviewKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 20, 10)
	out, err := PNGPreview(data, 50)
	if err != nil {
		t.Fatalf("PNGPreview: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 10 {
		t.Fatalf("preview = %dx%d, want 20x10", cfg.Width, cfg.Height)
	}
}
