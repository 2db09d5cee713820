package pfm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Header is the textual metadata block that precedes the pixel payload.
type Header struct {
	Width  int
	Height int
	// Iterations is the number of sample passes the pixels average, 0 if not annotated.
	Iterations int
	// Scale magnitude is a nominal range factor, its sign encodes payload byte order.
	Scale float32
}

// Order returns the payload byte order announced by the scale sign.
func (h Header) Order() ByteOrder {
	return OrderFromScale(h.Scale)
}

// ParseHeader decodes the header at the start of data and returns it together
// with the offset of the first payload byte.
func ParseHeader(data []byte) (Header, int, error) {
	return readHeader(bufio.NewReader(bytes.NewReader(data)))
}

func readHeader(br *bufio.Reader) (Header, int, error) {
	var (
		h        Header
		consumed int
	)

	line, err := readHeaderLine(br, &consumed)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return h, consumed, fmt.Errorf("%w: bad magic", ErrFormat)
		}
		return h, consumed, err
	}
	if line != magic {
		return h, consumed, fmt.Errorf("%w: bad magic", ErrFormat)
	}

	for {
		line, err = readHeaderLine(br, &consumed)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return h, consumed, fmt.Errorf("%w: missing metadata", ErrFormat)
			}
			return h, consumed, err
		}

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, iterationsTag):
			n, err := strconv.Atoi(strings.TrimSpace(line[len(iterationsTag):]))
			if err != nil || n < 0 {
				return h, consumed, fmt.Errorf("%w: bad iteration count %q", ErrFormat, line)
			}
			h.Iterations = n
			continue
		case strings.HasPrefix(line, commentPrefix):
			continue
		}

		if err := parseDimensions(line, &h); err != nil {
			return h, consumed, err
		}
		return h, consumed, nil
	}
}

// readHeaderLine reads one newline-terminated line and counts its raw bytes.
// An unterminated last line is returned as is, io.EOF is reported only when
// nothing was left to read.
func readHeaderLine(br *bufio.Reader, consumed *int) (string, error) {
	line, err := br.ReadString('\n')
	*consumed += len(line)
	if *consumed > maxHeaderBytes {
		return "", fmt.Errorf("%w: header exceeds %d bytes", ErrFormat, maxHeaderBytes)
	}
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n\t "), nil
}

func parseDimensions(line string, h *Header) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("%w: missing metadata", ErrFormat)
	}

	w, err := strconv.Atoi(fields[0])
	if err != nil || w <= 0 {
		return fmt.Errorf("%w: missing metadata: width %q", ErrFormat, fields[0])
	}
	ht, err := strconv.Atoi(fields[1])
	if err != nil || ht <= 0 {
		return fmt.Errorf("%w: missing metadata: height %q", ErrFormat, fields[1])
	}
	if _, ok := pixelCount(w, ht); !ok {
		return fmt.Errorf("%w: missing metadata: %dx%d exceeds %d pixels", ErrFormat, w, ht, maxPixels)
	}
	s, err := strconv.ParseFloat(fields[2], 32)
	if err != nil || s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: missing metadata: scale %q", ErrFormat, fields[2])
	}

	h.Width = w
	h.Height = ht
	h.Scale = float32(s)
	return nil
}

// AppendHeader appends the encoded header to dst. The scale sign is rewritten
// to announce order, its magnitude is kept.
func AppendHeader(dst []byte, h Header, order ByteOrder) []byte {
	mag := float32(math.Abs(float64(h.Scale)))
	if mag == 0 {
		mag = 1
	}

	dst = append(dst, magic...)
	dst = append(dst, '\n')
	if h.Iterations > 0 {
		dst = append(dst, iterationsTag...)
		dst = append(dst, ' ')
		dst = strconv.AppendInt(dst, int64(h.Iterations), 10)
		dst = append(dst, '\n')
	}
	dst = strconv.AppendInt(dst, int64(h.Width), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(h.Height), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendFloat(dst, float64(order.Sign()*mag), 'f', -1, 32)
	dst = append(dst, '\n')
	return dst
}

// EncodeHeader writes the encoded header to w.
func EncodeHeader(w io.Writer, h Header, order ByteOrder) error {
	_, err := w.Write(AppendHeader(nil, h, order))
	return err
}
