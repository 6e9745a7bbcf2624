// SPDX-License-Identifier: MIT

package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/led-badge/lbadge/pkg/bitmap"
)

// pixelSize is the rendering size in pixels. Glyphs are sized so that
// ascender plus descender fit the 11-row badge matrix.
const pixelSize = bitmap.Height

// Render rasterizes text into a badge bitmap using this face.
func (f *Face) Render(text string) *bitmap.Bitmap {
	return render(f.face, text)
}

// render composites glyphs left to right at an accumulating pen position.
// Characters the face has no glyph for contribute zero width and are
// skipped. The canvas width is the sum of the remaining advances; glyph
// pixels falling outside the canvas are dropped.
func render(face xfont.Face, text string) *bitmap.Bitmap {
	var total fixed.Int26_6
	for _, r := range text {
		if adv, ok := face.GlyphAdvance(r); ok {
			total += adv
		}
	}
	width := total.Ceil()
	if width == 0 {
		return &bitmap.Bitmap{}
	}

	// The pen baseline sits descent rows above the bottom of the matrix,
	// so descenders stay on the panel.
	baseline := bitmap.Height - face.Metrics().Descent.Ceil()
	if baseline < 0 {
		baseline = 0
	}

	pixels := make([]byte, width*bitmap.Height)
	pen := fixed.P(0, baseline)
	for _, r := range text {
		if _, ok := face.GlyphAdvance(r); !ok {
			continue
		}
		dr, mask, maskp, adv, ok := face.Glyph(pen, r)
		if ok {
			drawMask(pixels, width, dr, mask, maskp)
		}
		pen.X += adv
	}

	return bitmap.FromPixels(pixels, width)
}

// drawMask copies the lit pixels of a glyph coverage mask onto the canvas,
// clipping to the canvas bounds.
func drawMask(pixels []byte, width int, dr image.Rectangle, mask image.Image, maskp image.Point) {
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		if y < 0 || y >= bitmap.Height {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || x >= width {
				continue
			}
			_, _, _, alpha := mask.At(maskp.X+(x-dr.Min.X), maskp.Y+(y-dr.Min.Y)).RGBA()
			if alpha >= 0x8000 {
				pixels[y*width+x] = 0xFF
			}
		}
	}
}
