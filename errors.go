package asciiart

import "errors"

var (
	// ErrOutOfRange is returned by PixelBuffer.Luma for coordinates outside the image.
	ErrOutOfRange = errors.New("asciiart: coordinate out of range")
	// ErrNoChannels is returned by PixelBuffer.Luma when the buffer has no channels.
	ErrNoChannels = errors.New("asciiart: pixel buffer has no channels")
	// ErrBufferSize means the sample slice does not hold width*height*channels bytes.
	ErrBufferSize = errors.New("asciiart: pixel buffer size mismatch")

	ErrShortRamp = errors.New("asciiart: ramp needs at least two glyphs")
	ErrSkip      = errors.New("asciiart: skip factors must be positive")

	// ErrDecode wraps any failure to open or parse an input image.
	ErrDecode = errors.New("asciiart: cannot load image")

	// ErrOutputOpen means neither the preferred nor the fallback output file could be created.
	ErrOutputOpen = errors.New("asciiart: cannot open output file")

	ErrConfig = errors.New("asciiart: invalid config")
)
