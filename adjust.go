package asciiart

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// DefaultSigmoidMidpoint centers the sigmoid contrast curve on mid gray.
const DefaultSigmoidMidpoint = 0.5

// Adjustments are optional edits applied to a decoded image before it is
// sampled. The zero value leaves the image untouched.
type Adjustments struct {
	// Width resizes the image to this many pixels wide, keeping its aspect
	// ratio. Zero keeps the original size.
	Width uint `yaml:"width"`

	// Gamma of 1.0 (or 0) gives the original image. Less than 1.0 darkens,
	// greater than 1.0 lightens.
	Gamma float64 `yaml:"gamma"`

	Brightness float64 `yaml:"brightness"` // -100 to 100
	Contrast   float64 `yaml:"contrast"`   // -100 to 100
	Sharpen    float64 `yaml:"sharpen"`    // Sigma; 0 disables

	// SigmoidMidpoint must be between 0 and 1. A zero SigmoidFactor disables
	// the sigmoid contrast curve.
	SigmoidMidpoint float64 `yaml:"sigmoid_midpoint"`
	SigmoidFactor   float64 `yaml:"sigmoid_factor"`

	Invert bool `yaml:"invert"`
}

// IsZero reports whether a leaves images unchanged.
func (a Adjustments) IsZero() bool {
	return a.Width == 0 &&
		(a.Gamma == 0 || a.Gamma == 1) &&
		a.Brightness == 0 &&
		a.Contrast == 0 &&
		a.Sharpen == 0 &&
		a.SigmoidFactor == 0 &&
		!a.Invert
}

// Apply returns img with a applied in a fixed order: resize, gamma,
// brightness, sharpen, contrast, sigmoid, invert. img itself is returned when
// a is zero.
func (a Adjustments) Apply(img image.Image) image.Image {
	if a.IsZero() {
		return img
	}

	if a.Width > 0 && int(a.Width) != img.Bounds().Dx() {
		img = resize.Resize(a.Width, 0, img, resize.Lanczos3)
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen != 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		img = imaging.AdjustSigmoid(img, a.SigmoidMidpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}
