// SPDX-License-Identifier: MIT

// Package device implements the two USB report protocols spoken by the
// supported badge firmware families and the transport used to deliver
// them.
//
// The S1144 family (the older firmware) takes one 32-byte header report
// followed by the concatenated slot bitmaps chunked into 64-byte payloads.
// The B1248 family (the newer firmware) takes a greeting report, a
// configuration report with per-slot offset/length entries, one report per
// bitmap row with all slots interleaved, and a zero terminator report.
// Both framings are consumed by immutable firmware and are bit-exact here.
package device

import (
	"errors"
	"fmt"

	"github.com/led-badge/lbadge/pkg/badge"
)

// Transport and device errors. The auto selector keys on ErrNotFound to
// fall through to the next protocol candidate; everything else aborts.
var (
	ErrNotFound       = errors.New("badge not found")
	ErrMultipleFound  = errors.New("multiple badges found")
	ErrOpenFailed     = errors.New("could not open device")
	ErrWriteFailed    = errors.New("device IO error")
	ErrMessageTooLong = errors.New("messages exceed device display capacity")
)

// Device is an open, exclusively-owned badge handle. Reports are written
// in encoder order; the handle is closed when the send completes or fails.
type Device interface {
	Write(report []byte) (int, error)
	Close() error
}

// Transport opens the single badge with the given USB identifiers. It must
// return ErrNotFound when no matching device is present, ErrMultipleFound
// when more than one is, and an error wrapping ErrOpenFailed when the
// device exists but cannot be claimed.
type Transport interface {
	Open(vendorID, productID uint16) (Device, error)
}

// BadgeType selects which firmware protocol to speak.
type BadgeType int

const (
	// TypeAuto tries each protocol in order until one finds a device.
	TypeAuto BadgeType = iota
	// TypeS1144 is the older firmware family (VID 0416, PID 5020).
	TypeS1144
	// TypeB1248 is the newer firmware family (VID 0483, PID 5750).
	TypeB1248
)

func (t BadgeType) String() string {
	switch t {
	case TypeAuto:
		return "auto"
	case TypeS1144:
		return "s1144"
	case TypeB1248:
		return "b1248"
	}
	return fmt.Sprintf("badgetype(%d)", int(t))
}

// ParseBadgeType maps a CLI protocol name to a BadgeType.
func ParseBadgeType(s string) (BadgeType, error) {
	switch s {
	case "auto":
		return TypeAuto, nil
	case "s1144":
		return TypeS1144, nil
	case "b1248":
		return TypeB1248, nil
	}
	return 0, fmt.Errorf("unknown badge type %q (expected auto, s1144 or b1248)", s)
}

// Send encodes the badge configuration and writes it to the device over
// USB HID.
func Send(b *badge.Badge, typ BadgeType) error {
	return SendOver(b, typ, hidTransport{})
}

// SendOver is Send with an explicit transport, used by tests and by
// callers that manage device access themselves.
func SendOver(b *badge.Badge, typ BadgeType, tr Transport) error {
	switch typ {
	case TypeS1144:
		return sendS1144(b, tr)
	case TypeB1248:
		return sendB1248(b, tr)
	case TypeAuto:
		for _, send := range []func(*badge.Badge, Transport) error{sendS1144, sendB1248} {
			err := send(b, tr)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return err
		}
		return ErrNotFound
	}
	return fmt.Errorf("unknown badge type %d", typ)
}

// writeReports writes each report in order. A failed or short write aborts
// the send; nothing is retried or rolled back.
func writeReports(dev Device, reports []Report) error {
	for i, r := range reports {
		n, err := dev.Write(r)
		if err != nil {
			return fmt.Errorf("%w: report %d/%d: %v", ErrWriteFailed, i+1, len(reports), err)
		}
		if n != len(r) {
			return fmt.Errorf("%w: report %d/%d: short write (%d of %d bytes)",
				ErrWriteFailed, i+1, len(reports), n, len(r))
		}
	}
	return nil
}
