package pfm

import (
	"errors"
	"testing"
)

func TestToNRGBA(t *testing.T) {
	img := &Image{Width: 3, Height: 1, Scale: -1, Pix: []float32{
		0, 0, 0,
		1, 2, -1,
		0.25, 0.25, 0.25,
	}}

	out := img.ToNRGBA(0)
	want := []uint8{
		0, 0, 0, 255,
		255, 255, 0, 255,
		137, 137, 137, 255,
	}
	for i, v := range want {
		if out.Pix[i] != v {
			t.Fatalf("byte %d: got %d want %d", i, out.Pix[i], v)
		}
	}

	// One stop up turns 0.25 into 0.5.
	if got := img.ToNRGBA(1).Pix[8]; got != 188 {
		t.Fatalf("exposure +1: got %d want 188", got)
	}
}

func TestPreview(t *testing.T) {
	img := newTestImage(100, 50, 0, constant(0.5))

	thumb, err := Preview(img, 20, 20, 0)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if b := thumb.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("preview size: %dx%d", b.Dx(), b.Dy())
	}

	if _, err := Preview(New(), 20, 20, 0); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected empty image error, got %v", err)
	}
}
