// SPDX-License-Identifier: MIT

// Package badge holds the logical state of an LED badge: eight message
// slots, each with a bitmap and display attributes, plus a global
// brightness. The state is built up by slot-addressed mutators and read by
// the protocol encoders in the device package.
package badge

import (
	"fmt"
	"io"
	"os"

	"github.com/led-badge/lbadge/pkg/bitmap"
	"github.com/led-badge/lbadge/pkg/font"
)

const (
	// NumSlots is the number of independent message slots the badge stores.
	NumSlots = 8

	// SpeedMin and SpeedMax bound the animation speed.
	SpeedMin = 1
	SpeedMax = 8

	// BrightnessMax is the highest brightness level; the range is [0, 4]
	// with 0 the brightest. Stored raw; the legacy encoder shifts it into
	// the high nibble.
	BrightnessMax = 4
)

// Slot is one message channel: a bitmap plus its display attributes.
// Speed 0 means "never set"; encoders treat it as SpeedMin.
type Slot struct {
	Bitmap *bitmap.Bitmap
	Effect Effect
	Speed  uint8
	Blink  bool
	Frame  bool
}

// SpeedBits returns the 3-bit wire encoding of the slot speed, (speed-1),
// with unset speed mapping to zero.
func (s *Slot) SpeedBits() uint8 {
	if s.Speed == 0 {
		return 0
	}
	return (s.Speed - 1) & 0b111
}

// Badge is the full logical configuration sent to a device. It is built
// and consumed on a single goroutine; one instance per run.
type Badge struct {
	Brightness uint8
	slots      [NumSlots]Slot
}

// New returns a badge with all slots empty, effect left, speed unset.
func New() *Badge {
	b := &Badge{}
	for i := range b.slots {
		b.slots[i].Bitmap = &bitmap.Bitmap{}
	}
	return b
}

// Slot returns the slot at index i for reading. Encoders iterate indices
// [0, NumSlots); out-of-range access is a programming error and panics.
func (b *Badge) Slot(i int) *Slot {
	return &b.slots[i]
}

func (b *Badge) checkSlot(i int) error {
	if i < 0 || i >= NumSlots {
		return fmt.Errorf("%w (%d)", ErrSlotOutOfRange, i)
	}
	return nil
}

// SetText renders text with the first resolvable font family and stores
// the result in slot i. Empty text is a no-op: the slot bitmap is left
// untouched rather than replaced with a zero-width bitmap.
func (b *Badge) SetText(i int, text string, families []string) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	face, err := font.Resolve(families)
	if err != nil {
		return err
	}
	defer face.Close()
	b.slots[i].Bitmap = face.Render(text)
	return nil
}

// SetTextFromFile reads the message text from a file and renders it like
// SetText.
func (b *Badge) SetTextFromFile(i int, path string, families []string) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	return b.SetText(i, string(data), families)
}

// SetImage stores a ready-made bitmap in slot i.
func (b *Badge) SetImage(i int, bm *bitmap.Bitmap) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	b.slots[i].Bitmap = bm
	return nil
}

// SetImageFile loads a PNG file into slot i.
func (b *Badge) SetImageFile(i int, path string) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer f.Close()
	bm, err := bitmap.DecodePNG(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	b.slots[i].Bitmap = bm
	return nil
}

// SetEffect sets the scroll effect of slot i.
func (b *Badge) SetEffect(i int, e Effect) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	b.slots[i].Effect = e
	return nil
}

// SetSpeed sets the animation speed of slot i, in [SpeedMin, SpeedMax].
func (b *Badge) SetSpeed(i int, speed uint8) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	if speed < SpeedMin || speed > SpeedMax {
		return fmt.Errorf("%w (%d)", ErrInvalidSpeed, speed)
	}
	b.slots[i].Speed = speed
	return nil
}

// SetBlink sets the blink flag of slot i.
func (b *Badge) SetBlink(i int, blink bool) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	b.slots[i].Blink = blink
	return nil
}

// SetFrame sets the border-frame flag of slot i.
func (b *Badge) SetFrame(i int, frame bool) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	b.slots[i].Frame = frame
	return nil
}

// SetBrightness sets the global LED brightness, 0 (full) to BrightnessMax
// (dimmest).
func (b *Badge) SetBrightness(brightness uint8) error {
	if brightness > BrightnessMax {
		return fmt.Errorf("%w (%d)", ErrInvalidBrightness, brightness)
	}
	b.Brightness = brightness
	return nil
}

// ExportPNG writes slot i's bitmap as a grayscale PNG instead of sending
// it to a device. Exporting an empty slot is an error.
func (b *Badge) ExportPNG(i int, w io.Writer) error {
	if err := b.checkSlot(i); err != nil {
		return err
	}
	if b.slots[i].Bitmap.Empty() {
		return ErrNoContent
	}
	return bitmap.EncodePNG(b.slots[i].Bitmap, w)
}
