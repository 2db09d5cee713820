package pfm

const (
	magic          = "PF"
	commentPrefix  = "#"
	iterationsTag  = "#>"
	maxHeaderBytes = 64 << 10
)

const (
	channels      = 3
	floatSize     = 4
	pixelChunkLen = 4096 // floats per buffered read or write
	maxPixels     = 1 << 28
)
