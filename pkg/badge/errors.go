// SPDX-License-Identifier: MIT

package badge

import (
	"errors"
	"fmt"
)

// Validation and export errors of the badge model. Device and transport
// errors live in the device package; image format errors in bitmap.
var (
	// ErrSlotOutOfRange is returned by every slot-addressed mutator when
	// the index is not in [0, NumSlots).
	ErrSlotOutOfRange = errors.New("wrong message number")
	// ErrInvalidSpeed is returned when a speed is outside [SpeedMin, SpeedMax].
	ErrInvalidSpeed = errors.New("wrong speed value")
	// ErrInvalidBrightness is returned when a brightness is above BrightnessMax.
	ErrInvalidBrightness = errors.New("wrong brightness value")
	// ErrNoContent is returned when exporting a slot that has no bitmap.
	ErrNoContent = errors.New("no data to write")
)

// FileError wraps an IO error with the path of the file being read or
// written, when one is known.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("file IO error: %v", e.Err)
	}
	return fmt.Sprintf("file IO error: %v: %s", e.Err, e.Path)
}

func (e *FileError) Unwrap() error { return e.Err }
