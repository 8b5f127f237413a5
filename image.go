package asciiart

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes any registered image format from r. The returned error
// wraps ErrDecode.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, format, nil
}

// OpenImage decodes the image file at path.
func OpenImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Open decodes the image file at path into a PixelBuffer.
func Open(path string) (*PixelBuffer, error) {
	img, err := OpenImage(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// Decode decodes an image from r into a PixelBuffer.
func Decode(r io.Reader) (*PixelBuffer, error) {
	img, _, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

/*
FromImage copies img into a PixelBuffer whose origin is img.Bounds().Min.

Gray images become one channel buffers. Everything else becomes RGB, or RGBA
when the image has any translucent pixel. This mirrors what the decoders
actually produce: a gray PNG decodes to *image.Gray, an RGB PNG to an opaque
*image.RGBA, and a gray+alpha PNG to *image.NRGBA.

Gray+alpha images therefore become four channel buffers with R == G == B, not
two channel ones, and their luma is the weighted sum of three equal samples,
which can come out one below the gray value. Callers that need a gray+alpha
layout build it with NewPixelBuffer.
*/
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*w:(y+1)*w], src.Pix[i:i+w])
		}
		return &PixelBuffer{Pix: pix, Width: w, Height: h, Channels: 1}
	case *image.Gray16:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				pix[y*w+x] = uint8(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
		return &PixelBuffer{Pix: pix, Width: w, Height: h, Channels: 1}
	}

	channels := 4
	if opaque(img) {
		channels = 3
	}
	pix := make([]uint8, w*h*channels)
	// Looping over Y first and X second matches the row-major layout of pix.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * channels
			pix[i], pix[i+1], pix[i+2] = c.R, c.G, c.B
			if channels == 4 {
				pix[i+3] = c.A
			}
		}
	}
	return &PixelBuffer{Pix: pix, Width: w, Height: h, Channels: channels}
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
