package pfm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DecodeOptions controls image decoding.
type DecodeOptions struct {
	// AllowTruncated accepts a short pixel payload and zero-fills the missing values
	// instead of failing with ErrTruncatedPayload.
	AllowTruncated bool
}

// AllowTruncated is a decode option that tolerates short payloads.
func AllowTruncated(o *DecodeOptions) {
	o.AllowTruncated = true
}

// Decode reads a PF image from r.
func Decode(r io.Reader, options ...func(*DecodeOptions)) (*Image, error) {
	var opts DecodeOptions
	for _, o := range options {
		o(&opts)
	}

	br := bufio.NewReader(r)
	h, _, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	pix, err := DecodePixels(br, h.Width, h.Height, h.Order())
	if err != nil {
		if !opts.AllowTruncated || !errors.Is(err, ErrTruncatedPayload) {
			return nil, err
		}
		pix = append(pix, make([]float32, h.Width*h.Height*channels-len(pix))...)
	}

	return &Image{
		Width:      h.Width,
		Height:     h.Height,
		Iterations: h.Iterations,
		Scale:      h.Scale,
		Pix:        pix,
	}, nil
}

// Open reads a PF image file, paths ending with .zst are decompressed.
func Open(path string, options ...func(*DecodeOptions)) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()

	compressed := IsCompressedPath(path)

	var r io.Reader = f
	if compressed {
		dec, err := newZstdReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", path, ErrFormat, err)
		}
		defer dec.Close()
		r = dec
	}

	img, err := Decode(r, options...)
	if err != nil {
		// Corrupt zstd streams surface as read errors.
		if compressed && !errors.Is(err, ErrFormat) && !errors.Is(err, ErrTruncatedPayload) {
			err = fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Encode writes the image to w with the payload in order.
func (img *Image) Encode(w io.Writer, order ByteOrder) error {
	if err := img.validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := EncodeHeader(bw, img.Header(), order); err != nil {
		return err
	}
	if err := EncodePixels(bw, img.Pix, order); err != nil {
		return err
	}
	return bw.Flush()
}

// Save writes the image to path in host byte order, paths ending with .zst are compressed.
//
// A failed save may leave a partially written file behind.
func (img *Image) Save(path string) (err error) {
	if err := img.validate(); err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if clErr := f.Close(); clErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, clErr)
		}
	}()

	if !IsCompressedPath(path) {
		if err := img.Encode(f, HostByteOrder()); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		return nil
	}

	enc, err := newZstdWriter(f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := img.Encode(enc, HostByteOrder()); err != nil {
		_ = enc.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (img *Image) validate() error {
	if img.IsEmpty() {
		return ErrEmptyImage
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*channels {
		return fmt.Errorf("%w: %d values for %dx%d pixels", ErrGeometryMismatch, len(img.Pix), img.Width, img.Height)
	}
	return nil
}
