package pfm

// newTestImage returns a w x h image filled by fn(pixel index, channel).
func newTestImage(w, h, iters int, fn func(i, c int) float32) *Image {
	img := &Image{Width: w, Height: h, Iterations: iters, Scale: -1, Pix: make([]float32, w*h*channels)}
	for i := 0; i < w*h; i++ {
		for c := 0; c < channels; c++ {
			img.Pix[i*channels+c] = fn(i, c)
		}
	}
	return img
}

func constant(v float32) func(int, int) float32 {
	return func(int, int) float32 { return v }
}

func gradient(i, c int) float32 {
	return float32(i)*0.125 + float32(c)*1.5 - 3
}
