package asciiart

import "fmt"

// PixelBuffer holds Width*Height pixels of Channels interleaved 8-bit samples,
// row-major, with straight (non-premultiplied) alpha. Channel counts of 3 and
// 4 are RGB and RGBA; 1 and 2 are gray and gray+alpha.
//
// A PixelBuffer must not be modified once it has been handed to a renderer.
type PixelBuffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// NewPixelBuffer wraps pix as a width x height image with the given channel
// count. A channel count below one is accepted; sampling such a buffer always
// fails with ErrNoChannels.
func NewPixelBuffer(width, height, channels int, pix []uint8) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrBufferSize, width, height)
	}
	want := 0
	if channels > 0 {
		want = width * height * channels
	}
	if len(pix) != want {
		return nil, fmt.Errorf("%w: have %d samples, want %d", ErrBufferSize, len(pix), want)
	}
	return &PixelBuffer{
		Pix:      pix,
		Width:    width,
		Height:   height,
		Channels: channels,
	}, nil
}

// In reports whether (x, y) addresses a pixel of b.
func (b *PixelBuffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Luma returns the perceived brightness, 0-255, of the pixel at (x, y).
//
// Color pixels are weighted 0.299 R + 0.587 G + 0.114 B and truncated toward
// zero. Gray pixels return their gray sample. Alpha is ignored in both cases.
func (b *PixelBuffer) Luma(x, y int) (int, error) {
	if !b.In(x, y) {
		return 0, ErrOutOfRange
	}
	if b.Channels < 1 {
		return 0, ErrNoChannels
	}

	i := (y*b.Width + x) * b.Channels
	if b.Channels >= 3 {
		r, g, bl := float64(b.Pix[i]), float64(b.Pix[i+1]), float64(b.Pix[i+2])
		// Each product is rounded to float64 before the sum: no FMA.
		return int(float64(0.299*r) + float64(0.587*g) + float64(0.114*bl)), nil
	}
	return int(b.Pix[i]), nil
}
