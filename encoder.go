package asciiart

import (
	"fmt"
	"io"
)

const (
	DefaultSkipX = 4
	DefaultSkipY = 8
)

// Grid is rendered ASCII art, one string per output line.
type Grid []string

// WriteTo writes each row of g followed by a line feed.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range g {
		n, err := io.WriteString(w, row+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns g as newline terminated text.
func (g Grid) String() string {
	size := 0
	for _, row := range g {
		size += len(row) + 1
	}
	b := make([]byte, 0, size)
	for _, row := range g {
		b = append(b, row...)
		b = append(b, '\n')
	}
	return string(b)
}

// Cols returns the length of the longest row.
func (g Grid) Cols() int {
	var n int
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

/*
Render samples buf every skipX pixels across and every skipY pixels down and
maps each sample to a glyph of ramp.

Sampling stops one pixel short of the right and bottom edges, so an image
needs at least two pixels in each dimension to produce a cell, and a 1x1 image
renders as an empty grid. Pixels that cannot be sampled render as a space.
A buffer with negative dimensions is rejected with ErrBufferSize.
*/
func Render(buf *PixelBuffer, ramp Ramp, skipX, skipY int) (Grid, error) {
	if err := ramp.Validate(); err != nil {
		return nil, err
	}
	if skipX < 1 || skipY < 1 {
		return nil, ErrSkip
	}
	if buf.Width < 0 || buf.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBufferSize, buf.Width, buf.Height)
	}

	var grid Grid
	row := make([]byte, 0, (buf.Width+skipX-1)/skipX)
	for y := 0; y < buf.Height-1; y += skipY {
		row = row[:0]
		for x := 0; x < buf.Width-1; x += skipX {
			lum, err := buf.Luma(x, y)
			if err != nil {
				row = append(row, ' ')
				continue
			}
			row = append(row, ramp.Quantize(lum))
		}
		if len(row) > 0 {
			grid = append(grid, string(row))
		}
	}
	return grid, nil
}

type EncoderOpt func(enc *Encoder)

// WithRamp sets the glyph ramp.
func WithRamp(r Ramp) EncoderOpt {
	return func(enc *Encoder) {
		enc.ramp = r
	}
}

// WithSkip sets the horizontal and vertical sampling strides in pixels.
func WithSkip(x, y int) EncoderOpt {
	return func(enc *Encoder) {
		enc.skipX = x
		enc.skipY = y
	}
}

// Encoder writes pixel buffers as ASCII art to an io.Writer.
type Encoder struct {
	writer io.Writer // Output
	ramp   Ramp
	skipX  int // Pixels between columns
	skipY  int // Pixels between rows
}

func NewEncoder(w io.Writer, opts ...EncoderOpt) *Encoder {
	enc := Encoder{
		writer: w,
		ramp:   DefaultRamp,
		skipX:  DefaultSkipX,
		skipY:  DefaultSkipY,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Encode renders buf and writes one line per grid row.
func (enc *Encoder) Encode(buf *PixelBuffer) error {
	grid, err := Render(buf, enc.ramp, enc.skipX, enc.skipY)
	if err != nil {
		return err
	}
	_, err = grid.WriteTo(enc.writer)
	return err
}

// Encode writes buf to w using the default ramp and skip factors.
func Encode(w io.Writer, buf *PixelBuffer) error {
	return NewEncoder(w).Encode(buf)
}
