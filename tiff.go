package pfm

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/tiff"
)

// FromImage converts a decoded image into a float image with values in [0, 1].
// With srgb set the values are linearized with the sRGB transfer function.
// The result has an unspecified iteration count and a little-endian scale of 1.
func FromImage(src image.Image, srgb bool) *Image {
	b := src.Bounds()
	out := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Scale:  LittleEndian.Sign(),
		Pix:    make([]float32, b.Dx()*b.Dy()*channels),
	}

	decode := func(v uint16) float32 { return float32(v) / 0xffff }
	if srgb {
		decode = func(v uint16) float32 { return srgbInvOetf(float32(v) / 0xffff) }
	}

	for y := 0; y < out.Height; y++ {
		dst := out.row(y)
		for x := 0; x < out.Width; x++ {
			c := color.RGBA64Model.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA64)
			px := dst[x*channels : x*channels+channels]
			px[0], px[1], px[2] = decode(c.R), decode(c.G), decode(c.B)
		}
	}
	return out
}

// DecodeTIFF decodes an 8 or 16-bit TIFF image, see FromImage.
func DecodeTIFF(data []byte, srgb bool) (*Image, error) {
	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: invalid TIFF dimensions", ErrFormat)
	}
	if _, ok := pixelCount(b.Dx(), b.Dy()); !ok {
		return nil, fmt.Errorf("%w: TIFF of %dx%d exceeds %d pixels", ErrFormat, b.Dx(), b.Dy(), maxPixels)
	}
	return FromImage(img, srgb), nil
}
