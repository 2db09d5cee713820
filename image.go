package pfm

// Image is a float RGB image together with the PF metadata it was stored with.
//
// Pix holds interleaved RGB triples in row-major order, Width*Height*3 values.
// An image without pixels is empty, which is the state of a new image.
type Image struct {
	Width  int
	Height int
	// Iterations is the number of sample passes Pix averages, 0 when unspecified.
	Iterations int
	// Scale is carried through as is, only its sign is rewritten on save.
	Scale float32
	Pix   []float32
}

// New returns an empty image.
func New() *Image {
	return &Image{}
}

// IsEmpty reports whether the image has no pixels.
func (img *Image) IsEmpty() bool {
	return len(img.Pix) == 0
}

// Weight is the sample count used when averaging, an unspecified count weighs as one pass.
func (img *Image) Weight() int {
	if img.Iterations < 1 {
		return 1
	}
	return img.Iterations
}

// Header returns the metadata of the image.
func (img *Image) Header() Header {
	return Header{
		Width:      img.Width,
		Height:     img.Height,
		Iterations: img.Iterations,
		Scale:      img.Scale,
	}
}

// SameGeometry reports whether both images have equal width and height.
func (img *Image) SameGeometry(other *Image) bool {
	return img.Width == other.Width && img.Height == other.Height
}

// row returns the interleaved RGB values of row y.
func (img *Image) row(y int) []float32 {
	n := img.Width * channels
	return img.Pix[y*n : (y+1)*n : (y+1)*n]
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	c := *img
	c.Pix = append([]float32(nil), img.Pix...)
	return &c
}
