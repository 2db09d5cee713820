package pfm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"render.pfm", "render.pfm.zst"} {
		t.Run(name, func(t *testing.T) {
			img := newTestImage(6, 5, 32, gradient)
			img.Scale = 4 // big-endian sign, rewritten for the host on save

			p := filepath.Join(dir, name)
			if err := img.Save(p); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, err := Open(p)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if got.Width != img.Width || got.Height != img.Height || got.Iterations != img.Iterations {
				t.Fatalf("metadata mismatch: %+v", got.Header())
			}
			if got.Scale != HostByteOrder().Sign()*4 {
				t.Fatalf("scale: got %v", got.Scale)
			}
			if len(got.Pix) != len(img.Pix) {
				t.Fatalf("pixel count: got %d want %d", len(got.Pix), len(img.Pix))
			}
			for i := range got.Pix {
				if got.Pix[i] != img.Pix[i] {
					t.Fatalf("value %d: got %v want %v", i, got.Pix[i], img.Pix[i])
				}
			}
		})
	}
}

func TestSaveWritesHostOrder(t *testing.T) {
	img := newTestImage(1, 1, 0, constant(1))
	p := filepath.Join(t.TempDir(), "one.pfm")
	if err := img.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	h, n, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if h.Order() != HostByteOrder() {
		t.Fatalf("header announces %s on a %s host", h.Order(), HostByteOrder())
	}
	if len(data)-n != 12 {
		t.Fatalf("payload size %d", len(data)-n)
	}
}

func TestDecodeForeignByteOrder(t *testing.T) {
	img := newTestImage(3, 2, 7, gradient)

	var le, be bytes.Buffer
	if err := img.Encode(&le, LittleEndian); err != nil {
		t.Fatal(err)
	}
	if err := img.Encode(&be, BigEndian); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(le.Bytes(), be.Bytes()) {
		t.Fatal("encodings should differ")
	}

	fromLE, err := Decode(&le)
	if err != nil {
		t.Fatalf("decode little-endian: %v", err)
	}
	fromBE, err := Decode(&be)
	if err != nil {
		t.Fatalf("decode big-endian: %v", err)
	}
	if fromLE.Scale >= 0 || fromBE.Scale <= 0 {
		t.Fatalf("unexpected scale signs %v, %v", fromLE.Scale, fromBE.Scale)
	}
	for i := range img.Pix {
		if fromLE.Pix[i] != img.Pix[i] || fromBE.Pix[i] != img.Pix[i] {
			t.Fatalf("value %d: little %v big %v want %v", i, fromLE.Pix[i], fromBE.Pix[i], img.Pix[i])
		}
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Open(filepath.Join(dir, "missing.pfm")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	bad := filepath.Join(dir, "bad.pfm")
	if err := os.WriteFile(bad, []byte("P6\n1 1 255\n\x00\x00\x00"), 0o600); err != nil {
		t.Fatal(err)
	}
	img, err := Open(bad)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
	if img != nil {
		t.Fatal("no image expected on format error")
	}

	notZstd := filepath.Join(dir, "plain.pfm.zst")
	if err := os.WriteFile(notZstd, []byte("PF\n1 1 -1\n\x00\x00\x80\x3f"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(notZstd); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected format error for a corrupt zstd stream, got %v", err)
	}
}

func TestDecodeHugeDimensions(t *testing.T) {
	for _, header := range []string{
		"PF\n4611686018427387904 1 -1\n",
		"PF\n4611686018427387904 4 -1\n",
		"PF\n100000 100000 -1\n",
	} {
		img, err := Decode(bytes.NewReader([]byte(header)))
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("%q: expected format error, got %v", header, err)
		}
		if img != nil {
			t.Fatalf("%q: no image expected", header)
		}
	}

	// Within limits but without payload: reported as truncated, not preallocated.
	if _, err := Decode(bytes.NewReader([]byte("PF\n10000 10000 -1\n"))); !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("expected truncated payload, got %v", err)
	}
}

func TestOpenTruncated(t *testing.T) {
	img := newTestImage(2, 2, 3, constant(0.5))
	var buf bytes.Buffer
	if err := img.Encode(&buf, LittleEndian); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()[:buf.Len()-10]

	p := filepath.Join(t.TempDir(), "short.pfm")
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(p); !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("expected truncated payload, got %v", err)
	}

	got, err := Open(p, AllowTruncated)
	if err != nil {
		t.Fatalf("lenient open: %v", err)
	}
	if len(got.Pix) != len(img.Pix) {
		t.Fatalf("pixel count: got %d want %d", len(got.Pix), len(img.Pix))
	}
	// 12 values written, 10 bytes cut: 9 complete floats remain.
	for i, v := range got.Pix {
		want := float32(0.5)
		if i >= 9 {
			want = 0
		}
		if v != want {
			t.Fatalf("value %d: got %v want %v", i, v, want)
		}
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()

	if err := New().Save(filepath.Join(dir, "empty.pfm")); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected empty image error, got %v", err)
	}

	img := newTestImage(1, 1, 0, constant(1))
	if err := img.Save(filepath.Join(dir, "no", "such", "dir.pfm")); !errors.Is(err, ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}

	img.Pix = img.Pix[:2]
	if err := img.Save(filepath.Join(dir, "broken.pfm")); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("expected geometry error, got %v", err)
	}
}
