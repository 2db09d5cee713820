package pfm

import (
	"errors"
	"fmt"
)

// Merge folds incoming into img as a sample-weighted running average.
//
// An empty img adopts a copy of incoming, an empty incoming leaves img untouched.
// Images of different size are rejected with ErrGeometryMismatch and neither is changed.
// Each value becomes (v*w1 + u*w2) / (w1 + w2), where w1 and w2 are the weights of
// img and incoming, and img.Iterations becomes w1 + w2.
func (img *Image) Merge(incoming *Image) error {
	if incoming.IsEmpty() {
		return nil
	}
	if err := incoming.validate(); err != nil {
		return err
	}

	if img.IsEmpty() {
		*img = *incoming.Clone()
		return nil
	}

	if !img.SameGeometry(incoming) {
		return fmt.Errorf("%w: %dx%d and %dx%d", ErrGeometryMismatch,
			img.Width, img.Height, incoming.Width, incoming.Height)
	}
	if err := img.validate(); err != nil {
		return err
	}

	w1 := float64(img.Weight())
	w2 := float64(incoming.Weight())
	total := w1 + w2

	for i, u := range incoming.Pix {
		img.Pix[i] = float32((float64(img.Pix[i])*w1 + float64(u)*w2) / total)
	}
	img.Iterations = img.Weight() + incoming.Weight()

	return nil
}

// Accumulate opens the image at path and merges it into img.
// The decoded image is returned so that callers can report what was read.
func (img *Image) Accumulate(path string, options ...func(*DecodeOptions)) (*Image, error) {
	incoming, err := Open(path, options...)
	if err != nil {
		return nil, err
	}
	if err := img.Merge(incoming); err != nil {
		return incoming, fmt.Errorf("%s: %w", path, err)
	}
	return incoming, nil
}

// MergeFiles folds the images at paths left to right.
//
// Files that cannot be decoded or do not match the geometry of the first image
// are left out. When report is not nil it is called once per path, with the
// decoded image on success or the reason the file was skipped.
// The result is empty when nothing could be read.
func MergeFiles(paths []string, report func(path string, img *Image, err error), options ...func(*DecodeOptions)) (*Image, error) {
	acc := New()

	for _, p := range paths {
		in, err := acc.Accumulate(p, options...)
		if err != nil && !skippable(err) {
			return nil, err
		}
		if report != nil {
			if err != nil {
				in = nil
			}
			report(p, in, err)
		}
	}

	return acc, nil
}

func skippable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrTruncatedPayload) || errors.Is(err, ErrGeometryMismatch)
}
