package pfm

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// DecodePixels reads width*height RGB float32 triples stored in order.
//
// When r ends early the floats read so far are returned with ErrTruncatedPayload.
func DecodePixels(r io.Reader, width, height int, order ByteOrder) ([]float32, error) {
	n, ok := pixelCount(width, height)
	if !ok {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrFormat, width, height)
	}

	bo := order.binary()
	pix := make([]float32, 0, min(n, pixelChunkLen))
	buf := make([]byte, min(n, pixelChunkLen)*floatSize)

	for len(pix) < n {
		want := min(n-len(pix), pixelChunkLen) * floatSize
		got, err := io.ReadFull(r, buf[:want])
		for off := 0; off+floatSize <= got; off += floatSize {
			pix = append(pix, math.Float32frombits(bo.Uint32(buf[off:off+floatSize])))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return pix, fmt.Errorf("%w: got %d of %d floats", ErrTruncatedPayload, len(pix), n)
			}
			return pix, err
		}
	}

	return pix, nil
}

// pixelCount returns the number of float values in a width x height image,
// ok is false for non-positive sizes and for more than maxPixels pixels.
func pixelCount(width, height int) (n int, ok bool) {
	if width <= 0 || height <= 0 || width > maxPixels/height {
		return 0, false
	}
	return width * height * channels, true
}

// EncodePixels writes pix as float32 values in order.
func EncodePixels(w io.Writer, pix []float32, order ByteOrder) error {
	bo := order.binary()
	buf := make([]byte, min(len(pix), pixelChunkLen)*floatSize)

	for len(pix) > 0 {
		chunk := pix[:min(len(pix), pixelChunkLen)]
		for i, v := range chunk {
			bo.PutUint32(buf[i*floatSize:], math.Float32bits(v))
		}
		if _, err := w.Write(buf[:len(chunk)*floatSize]); err != nil {
			return err
		}
		pix = pix[len(chunk):]
	}

	return nil
}
