package pfm

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// ToNRGBA renders the linear image to 8-bit sRGB after scaling by 2^exposure.
// Values outside of [0, 1] are clipped.
func (img *Image) ToNRGBA(exposure float32) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	if img.IsEmpty() {
		return out
	}

	gain := float32(math.Exp2(float64(exposure)))
	for y := 0; y < img.Height; y++ {
		dst := out.Pix[y*out.Stride:]
		for x, src := 0, img.row(y); len(src) > 0; x, src = x+4, src[channels:] {
			dst[x] = to8(src[0] * gain)
			dst[x+1] = to8(src[1] * gain)
			dst[x+2] = to8(src[2] * gain)
			dst[x+3] = 0xff
		}
	}
	return out
}

func to8(v float32) uint8 {
	return uint8(srgbOetf(clamp01(v))*255 + 0.5)
}

// Preview renders the image and downscales it to fit into maxWidth x maxHeight,
// keeping the aspect ratio. Images that already fit are not enlarged.
func Preview(img *Image, maxWidth, maxHeight uint, exposure float32) (image.Image, error) {
	if err := img.validate(); err != nil {
		return nil, err
	}
	return resize.Thumbnail(maxWidth, maxHeight, img.ToNRGBA(exposure), resize.Lanczos3), nil
}
