// SPDX-License-Identifier: MIT

// Package bitmap implements the 1-bit raster format shared by the badge's
// text renderer, PNG import/export, and both wire protocol encoders.
//
// A bitmap is a fixed-height (11 row) monochrome image stored column-major
// in groups of 8 horizontal pixels: byte `data[col*Height+row]` holds the
// pixels at x = col*8 .. col*8+7 of row `row`, most significant bit first.
// This is the exact layout the badge firmware consumes, so it is also the
// in-memory representation; width is measured in byte-columns.
package bitmap

// Height is the pixel height of every badge bitmap. Both firmware families
// drive an 11-row LED matrix.
const Height = 11

// Bitmap is a fixed-height 1-bit raster in badge byte-column order.
// The zero value is an empty bitmap (no content).
type Bitmap struct {
	data []byte
}

// FromData wraps raw byte-column data in a Bitmap. The length of data must
// be a multiple of Height; FromData panics otherwise, since such data
// cannot have come from a valid packing.
func FromData(data []byte) *Bitmap {
	if len(data)%Height != 0 {
		panic("bitmap: data length is not a multiple of the bitmap height")
	}
	return &Bitmap{data: data}
}

// FromPixels packs an 8-bit pixel buffer of the given width and exactly
// Height rows. A pixel is lit when its value is >= 0x80. The buffer is
// row-major, len(pixels) == width*Height.
func FromPixels(pixels []byte, width int) *Bitmap {
	return &Bitmap{data: PackPixels(pixels, width, Height)}
}

// PackPixels converts a row-major 8-bit pixel buffer into byte-column
// order: output[col*height+row] holds 8 horizontal pixels of that row,
// MSB = leftmost. Pixels >= 0x80 are lit. Pixels beyond width within the
// last byte-column stay zero.
func PackPixels(pixels []byte, width, height int) []byte {
	widthBytes := (width + 7) / 8
	data := make([]byte, widthBytes*height)
	for i, v := range pixels {
		if v < 0x80 {
			continue
		}
		x := i % width
		y := i / width
		data[(x/8)*height+y] |= 0x80 >> (x % 8)
	}
	return data
}

// Data returns the raw byte-column data. The slice is not copied; callers
// treat it as read-only.
func (b *Bitmap) Data() []byte {
	return b.data
}

// WidthBytes returns the width in byte-columns, the unit the wire
// protocols measure message length in.
func (b *Bitmap) WidthBytes() int {
	return len(b.data) / Height
}

// Width returns the pixel width, rounded up to a multiple of 8.
func (b *Bitmap) Width() int {
	return b.WidthBytes() * 8
}

// Empty reports whether the bitmap has no content.
func (b *Bitmap) Empty() bool {
	return len(b.data) == 0
}

// PixelAt reports whether the pixel at (x, y) is lit. Coordinates outside
// the bitmap are unlit.
func (b *Bitmap) PixelAt(x, y int) bool {
	if x < 0 || y < 0 || y >= Height || x >= b.Width() {
		return false
	}
	return b.data[(x/8)*Height+y]&(0x80>>(x%8)) != 0
}

// Equal reports whether two bitmaps have identical content.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if len(b.data) != len(other.data) {
		return false
	}
	for i, v := range b.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}
