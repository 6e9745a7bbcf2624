// SPDX-License-Identifier: MIT

// Package font resolves font family names to loadable faces and renders
// text into badge bitmaps at the fixed 11-pixel badge height.
package font

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamilies is the family chain used when the caller does not name a
// font.
var DefaultFamilies = []string{"Liberation Sans", "Arial"}

var (
	// ErrNotFound is returned when no requested family or file resolves.
	ErrNotFound = errors.New("font not found")
	// ErrLoad is returned when a font file exists but cannot be parsed.
	ErrLoad = errors.New("failed to load font")
)

// System font discovery scans the platform font directories once per
// process; the finder is shared by every subsequent resolution.
var (
	finderOnce sync.Once
	finder     *sysfont.Finder
)

func systemFinder() *sysfont.Finder {
	finderOnce.Do(func() {
		finder = sysfont.NewFinder(nil)
	})
	return finder
}

// matchFamily maps a family name to a font file path, or "" when the
// system has no match. Swapped out by tests.
var matchFamily = func(name string) string {
	match := systemFinder().Match(name)
	if match == nil {
		return ""
	}
	return match.Filename
}

// fallbackNotice receives the note printed when no requested family
// resolves and the embedded face is used instead.
var fallbackNotice io.Writer = os.Stderr

var (
	fallbackOnce sync.Once
	fallbackFont *truetype.Font
)

// fallbackFace returns the embedded Go Regular face. Parsing the embedded
// TTF cannot fail at runtime; a panic here means a corrupt toolchain.
func fallbackFace() *Face {
	fallbackOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("font: parsing embedded fallback: %v", err))
		}
		fallbackFont = f
	})
	return newFace(fallbackFont)
}

// Face is a font loaded at badge pixel size, ready for rendering.
type Face struct {
	face xfont.Face
}

func newFace(f *truetype.Font) *Face {
	return &Face{face: truetype.NewFace(f, &truetype.Options{
		Size:    pixelSize,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})}
}

// Close releases rasterization caches held by the face.
func (f *Face) Close() error {
	return f.face.Close()
}

// LoadFile loads a TrueType font from a file path.
func LoadFile(path string) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	return newFace(f), nil
}

// Resolve turns an ordered family-name list into a loaded face. Each entry
// may also be a font file path, which is loaded directly. When nothing on
// the list resolves to a parseable TrueType file the embedded Go Regular
// face is returned, so rendering always has a face to work with; a notice
// on stderr names the families that were skipped.
func Resolve(families []string) (*Face, error) {
	if len(families) == 0 {
		families = DefaultFamilies
	}

	for _, name := range families {
		if isFontPath(name) {
			face, err := LoadFile(name)
			if err != nil {
				// A path the user spelled out should fail loudly rather
				// than silently matching some other font.
				return nil, err
			}
			return face, nil
		}
		filename := matchFamily(name)
		if filename == "" {
			continue
		}
		face, err := LoadFile(filename)
		if err != nil {
			// The match may be an OpenType/CFF file truetype cannot
			// parse; try the next family.
			continue
		}
		return face, nil
	}

	fmt.Fprintf(fallbackNotice, "font: no usable font among %s, using embedded Go Regular\n",
		strings.Join(families, ", "))
	return fallbackFace(), nil
}

// isFontPath reports whether a --font argument names a file rather than a
// family.
func isFontPath(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".ttc", ".otf":
		return true
	}
	if _, err := os.Stat(name); err == nil && strings.ContainsRune(name, os.PathSeparator) {
		return true
	}
	return false
}
