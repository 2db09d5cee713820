package pfm

import (
	"fmt"
	"math"
)

// ITU-R BT.709 relative luminance weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance returns the BT.709 relative luminance of a linear RGB color.
func Luminance(r, g, b float32) float32 {
	return lumaR*r + lumaG*g + lumaB*b
}

// Metrics is the result of comparing a candidate image against a reference.
type Metrics struct {
	// RMSE is the root-mean-square luminance error.
	RMSE float32
	// MaxReferenceLuminance is the brightest reference pixel luminance.
	MaxReferenceLuminance float32
	// RelativeRMSE is RMSE divided by MaxReferenceLuminance, 0 if the reference is black.
	RelativeRMSE float32
}

// Compare scores candidate against reference by luminance, neither image is modified.
func Compare(candidate, reference *Image) (Metrics, error) {
	var m Metrics

	if !candidate.SameGeometry(reference) || candidate.IsEmpty() != reference.IsEmpty() {
		return m, fmt.Errorf("%w: %dx%d and %dx%d", ErrGeometryMismatch,
			candidate.Width, candidate.Height, reference.Width, reference.Height)
	}
	if err := candidate.validate(); err != nil {
		return m, err
	}
	if err := reference.validate(); err != nil {
		return m, err
	}

	var (
		sum    float64
		maxRef = math.Inf(-1)
	)

	for i := 0; i < len(reference.Pix); i += channels {
		c := float64(Luminance(candidate.Pix[i], candidate.Pix[i+1], candidate.Pix[i+2]))
		r := float64(Luminance(reference.Pix[i], reference.Pix[i+1], reference.Pix[i+2]))
		d := c - r
		sum += d * d
		if r > maxRef {
			maxRef = r
		}
	}

	m.RMSE = float32(math.Sqrt(sum / float64(reference.Width*reference.Height)))
	m.MaxReferenceLuminance = float32(maxRef)
	if maxRef > 0 {
		m.RelativeRMSE = float32(float64(m.RMSE) / maxRef)
	}

	return m, nil
}

// RMSE returns the root-mean-square luminance error of candidate against reference.
func RMSE(candidate, reference *Image) (float32, error) {
	m, err := Compare(candidate, reference)
	if err != nil {
		return 0, err
	}
	return m.RMSE, nil
}
