package asciiart

// Ramp is an ordered glyph alphabet, from visually light to visually dense.
type Ramp string

// DefaultRamp is the 20 glyph ramp used unless another is supplied.
const DefaultRamp Ramp = " `.,-':<>;+!*/?%&98#"

// Validate reports whether r has enough glyphs to quantize with.
func (r Ramp) Validate() error {
	if len(r) < 2 {
		return ErrShortRamp
	}
	return nil
}

// Quantize maps a brightness in [0, 255] to a glyph of r. Dark values map to
// the dense end of the ramp, bright values to the light end. r must be valid.
func (r Ramp) Quantize(brightness int) byte {
	last := len(r) - 1
	coef := 255.0 / float64(last)
	i := last - int(float64(brightness)/coef)
	if i < 0 {
		i = 0
	} else if i > last {
		i = last
	}
	return r[i]
}

// Darkest returns the glyph used for brightness 0.
func (r Ramp) Darkest() byte {
	return r.Quantize(0)
}

// Lightest returns the glyph used for brightness 255.
func (r Ramp) Lightest() byte {
	return r.Quantize(255)
}
