// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"
	"testing"

	"github.com/led-badge/lbadge/pkg/badge"
)

// fakeDevice records every report written to it.
type fakeDevice struct {
	reports  []Report
	failAt   int // fail the nth write (1-based), 0 = never
	shortAt  int // short-write the nth write (1-based), 0 = never
	closed   bool
	writeErr error
}

func (d *fakeDevice) Write(report []byte) (int, error) {
	n := len(d.reports) + 1
	if d.failAt != 0 && n == d.failAt {
		if d.writeErr == nil {
			d.writeErr = errors.New("usb stall")
		}
		return 0, d.writeErr
	}
	if d.shortAt != 0 && n == d.shortAt {
		return len(report) - 1, nil
	}
	r := make(Report, len(report))
	copy(r, report)
	d.reports = append(d.reports, r)
	return len(report), nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

// fakeTransport maps USB identifiers to canned open outcomes.
type fakeTransport struct {
	devices map[uint16]*fakeDevice // keyed by vendor ID
	openErr map[uint16]error
	opened  []uint16
}

func (t *fakeTransport) Open(vendorID, productID uint16) (Device, error) {
	t.opened = append(t.opened, vendorID)
	if err, ok := t.openErr[vendorID]; ok {
		return nil, err
	}
	if dev, ok := t.devices[vendorID]; ok {
		return dev, nil
	}
	return nil, ErrNotFound
}

func TestSendOver_S1144WritesAllReports(t *testing.T) {
	dev := &fakeDevice{}
	tr := &fakeTransport{devices: map[uint16]*fakeDevice{s1144VendorID: dev}}

	b := badge.New()
	if err := b.SetImage(0, slotBitmap(t, 2, 0x55)); err != nil {
		t.Fatal(err)
	}
	if err := SendOver(b, TypeS1144, tr); err != nil {
		t.Fatalf("SendOver: %v", err)
	}
	if len(dev.reports) != 2 {
		t.Errorf("wrote %d reports, want header + 1 chunk", len(dev.reports))
	}
	if !dev.closed {
		t.Error("device should be closed after a successful send")
	}
}

func TestSendOver_AutoFallsThroughOnNotFound(t *testing.T) {
	dev := &fakeDevice{}
	tr := &fakeTransport{devices: map[uint16]*fakeDevice{b1248VendorID: dev}}

	if err := SendOver(badge.New(), TypeAuto, tr); err != nil {
		t.Fatalf("SendOver: %v", err)
	}
	if len(tr.opened) != 2 || tr.opened[0] != s1144VendorID || tr.opened[1] != b1248VendorID {
		t.Errorf("open order = %04x, want s1144 then b1248", tr.opened)
	}
	// 2 + 11 rows + terminator.
	if len(dev.reports) != 14 {
		t.Errorf("wrote %d reports, want 14", len(dev.reports))
	}
}

func TestSendOver_AutoStopsOnOtherErrors(t *testing.T) {
	openFailed := fmt.Errorf("%w: permission denied", ErrOpenFailed)
	tr := &fakeTransport{openErr: map[uint16]error{s1144VendorID: openFailed}}

	err := SendOver(badge.New(), TypeAuto, tr)
	if !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("err = %v, want ErrOpenFailed", err)
	}
	if len(tr.opened) != 1 {
		t.Errorf("auto mode must not try further candidates after a non-not-found error, opened %d", len(tr.opened))
	}
}

func TestSendOver_AutoAllNotFound(t *testing.T) {
	tr := &fakeTransport{}
	if err := SendOver(badge.New(), TypeAuto, tr); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(tr.opened) != 2 {
		t.Errorf("auto mode should have tried both protocols, opened %d", len(tr.opened))
	}
}

func TestSendOver_MultipleDevicesAbort(t *testing.T) {
	multi := fmt.Errorf("%w: 2 devices match", ErrMultipleFound)
	tr := &fakeTransport{openErr: map[uint16]error{s1144VendorID: multi}}

	if err := SendOver(badge.New(), TypeAuto, tr); !errors.Is(err, ErrMultipleFound) {
		t.Fatalf("err = %v, want ErrMultipleFound", err)
	}
}

func TestSendOver_WriteFailureAborts(t *testing.T) {
	dev := &fakeDevice{failAt: 2}
	tr := &fakeTransport{devices: map[uint16]*fakeDevice{s1144VendorID: dev}}

	b := badge.New()
	if err := b.SetImage(0, slotBitmap(t, 2, 0xFF)); err != nil {
		t.Fatal(err)
	}
	err := SendOver(b, TypeS1144, tr)
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("err = %v, want ErrWriteFailed", err)
	}
	if len(dev.reports) != 1 {
		t.Errorf("send should abort at the failed report, wrote %d", len(dev.reports))
	}
	if !dev.closed {
		t.Error("device should be closed even when a write fails")
	}
}

func TestSendOver_ShortWriteIsAnError(t *testing.T) {
	dev := &fakeDevice{shortAt: 1}
	tr := &fakeTransport{devices: map[uint16]*fakeDevice{s1144VendorID: dev}}

	if err := SendOver(badge.New(), TypeS1144, tr); !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("err = %v, want ErrWriteFailed", err)
	}
}

func TestSendOver_B1248EncodeErrorBeforeOpen(t *testing.T) {
	b := badge.New()
	if err := b.SetImage(0, slotBitmap(t, 64, 0x01)); err != nil {
		t.Fatal(err)
	}
	tr := &fakeTransport{}
	if err := SendOver(b, TypeB1248, tr); !errors.Is(err, ErrMessageTooLong) {
		t.Fatalf("err = %v, want ErrMessageTooLong", err)
	}
	if len(tr.opened) != 0 {
		t.Error("an unencodable configuration should not open the device")
	}
}

func TestParseBadgeType(t *testing.T) {
	tests := []struct {
		in   string
		want BadgeType
		ok   bool
	}{
		{"auto", TypeAuto, true},
		{"s1144", TypeS1144, true},
		{"b1248", TypeB1248, true},
		{"S1144", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseBadgeType(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseBadgeType(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseBadgeType(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if tt.ok && got.String() != tt.in {
			t.Errorf("BadgeType(%v).String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
