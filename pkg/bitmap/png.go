// SPDX-License-Identifier: MIT

package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
)

// ErrUnsupportedFormat is returned when a PNG decodes successfully but its
// pixel format or geometry cannot be converted into a badge bitmap.
var ErrUnsupportedFormat = errors.New("unsupported image format")

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// checkBitDepth reads the bit depth from the IHDR chunk. The stdlib
// decoder widens 1/2/4-bit images to 8 bits in memory, so accepting only
// 8bpp input requires looking at the header itself. Streams that are not
// PNGs at all are left for png.Decode to report.
func checkBitDepth(data []byte) error {
	// Signature (8) + IHDR length/type (8) + width/height (8) + depth (1).
	if len(data) < 25 || !bytes.Equal(data[:8], pngSignature) ||
		!bytes.Equal(data[12:16], []byte("IHDR")) {
		return nil
	}
	if depth := data[24]; depth != 8 {
		return fmt.Errorf("%w: only 8bpp PNG supported, got bit depth %d",
			ErrUnsupportedFormat, depth)
	}
	return nil
}

// DecodePNG reads a PNG and converts it into a badge bitmap.
//
// The image must be 8 bits per channel and exactly Height pixels tall.
// Grayscale, grayscale+alpha, RGB, indexed and RGBA layouts are accepted;
// only the first channel of each pixel is sampled, and a pixel is lit when
// that channel is >= 0x80.
func DecodePNG(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	if err := checkBitDepth(data); err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if height != Height {
		return nil, fmt.Errorf("%w: height must be %dpx, but height is %d",
			ErrUnsupportedFormat, Height, height)
	}

	pixels := make([]byte, width*height)
	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = src.Pix[y*src.Stride+x]
			}
		}
	case *image.NRGBA:
		// 8-bit RGBA and grayscale+alpha PNGs both decode to NRGBA.
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = src.Pix[y*src.Stride+x*4]
			}
		}
	case *image.RGBA:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = src.Pix[y*src.Stride+x*4]
			}
		}
	case *image.Paletted:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				red, _, _, _ := src.Palette[src.Pix[y*src.Stride+x]].RGBA()
				pixels[y*width+x] = byte(red >> 8)
			}
		}
	default:
		return nil, fmt.Errorf("%w: only 8bpp PNG supported", ErrUnsupportedFormat)
	}

	return FromPixels(pixels, width), nil
}

// EncodePNG writes the bitmap as an 8-bit grayscale PNG. Lit pixels become
// 0xFF, unlit 0x00. The image width is the byte-column width times 8, so
// widths that were not a multiple of 8 gain unlit trailing columns.
func EncodePNG(b *Bitmap, w io.Writer) error {
	width := b.Width()
	img := image.NewGray(image.Rect(0, 0, width, Height))
	for i, v := range b.data {
		x := (i / Height) * 8
		y := i % Height
		for bit := 0; bit < 8; bit++ {
			if v&(0x80>>bit) != 0 {
				img.Pix[y*img.Stride+x+bit] = 0xFF
			}
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
