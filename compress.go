package pfm

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const compressedExt = ".zst"

// IsCompressedPath reports whether path names a zstd-compressed image.
func IsCompressedPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), compressedExt)
}

func newZstdReader(r io.Reader) (*zstd.Decoder, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return dec, nil
}

func newZstdWriter(w io.Writer) (*zstd.Encoder, error) {
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd encode: %w", err)
	}
	return enc, nil
}
