package asciiart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultFontSize = 12
	previewDPI      = 72
)

// LoadFontFace parses the TrueType font at path into a face of the given
// point size.
func LoadFontFace(path string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     previewDPI,
		Hinting: font.HintingFull,
	}), nil
}

// Preview rasterizes grids so the art can be checked as an image. Every glyph
// occupies one fixed cell, so Face should be monospaced.
type Preview struct {
	Face       font.Face
	Foreground color.Color
	Background color.Color
}

// NewPreview returns a black on white Preview. A nil face selects the
// built-in 7x13 bitmap face.
func NewPreview(face font.Face) *Preview {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Preview{
		Face:       face,
		Foreground: color.Black,
		Background: color.White,
	}
}

// CellSize returns the width and height in pixels of one glyph cell.
func (p *Preview) CellSize() (int, int) {
	adv, ok := p.Face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(p.Face.Metrics().Height.Ceil() / 2)
	}
	return adv.Ceil(), p.Face.Metrics().Height.Ceil()
}

// Draw renders g onto a new image sized to fit its widest row. An empty grid
// yields a single blank cell.
func (p *Preview) Draw(g Grid) *image.RGBA {
	cw, ch := p.CellSize()
	cols, rows := g.Cols(), len(g)
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	bounds := image.Rect(0, 0, cols*cw, rows*ch)
	img := image.NewRGBA(bounds)

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(p.Background)
	draw2dkit.Rectangle(gc, 0, 0, float64(bounds.Dx()), float64(bounds.Dy()))
	gc.Fill()

	ascent := p.Face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.Foreground),
		Face: p.Face,
	}
	for i, row := range g {
		// Each glyph is placed on its own cell so proportional faces stay on the grid.
		for j := 0; j < len(row); j++ {
			d.Dot = fixed.P(j*cw, i*ch+ascent)
			d.DrawString(row[j : j+1])
		}
	}
	return img
}

// Encode writes g to w as a PNG.
func (p *Preview) Encode(w io.Writer, g Grid) error {
	return png.Encode(w, p.Draw(g))
}

// WriteFile writes g as a PNG file at path.
func (p *Preview) WriteFile(path string, g Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := p.Encode(f, g); err != nil {
		return fmt.Errorf("encode preview %s: %w", path, err)
	}
	return f.Close()
}
