// SPDX-License-Identifier: MIT

package device

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/led-badge/lbadge/pkg/badge"
	"github.com/led-badge/lbadge/pkg/bitmap"
)

// slotBitmap returns a bitmap of the given byte-column count whose bytes
// are all the given value.
func slotBitmap(t *testing.T, columns int, fill byte) *bitmap.Bitmap {
	t.Helper()
	data := make([]byte, columns*bitmap.Height)
	for i := range data {
		data[i] = fill
	}
	return bitmap.FromData(data)
}

func TestEncodeS1144_EmptyBadge(t *testing.T) {
	reports := EncodeS1144(badge.New())
	if len(reports) != 1 {
		t.Fatalf("empty badge should produce only the header report, got %d", len(reports))
	}
	header := reports[0]
	if len(header) != ReportLen {
		t.Fatalf("report length %d, want %d", len(header), ReportLen)
	}
	if header[0] != 0x00 {
		t.Errorf("report ID = 0x%02X, want 0x00", header[0])
	}
	if !bytes.Equal(header[1:6], []byte{'w', 'a', 'n', 'g', 0x00}) {
		t.Errorf("magic = % 02X, want \"wang\\0\"", header[1:6])
	}
	for i := 6; i < ReportLen; i++ {
		if header[i] != 0 {
			t.Fatalf("byte %d = 0x%02X, want 0 on a default badge", i, header[i])
		}
	}
}

func TestEncodeS1144_HeaderBitLayout(t *testing.T) {
	b := badge.New()
	if err := b.SetEffect(7, badge.EffectLaser); err != nil {
		t.Fatal(err)
	}
	if err := b.SetSpeed(0, 8); err != nil {
		t.Fatal(err)
	}
	if err := b.SetBlink(7, true); err != nil {
		t.Fatal(err)
	}
	if err := b.SetFrame(2, true); err != nil {
		t.Fatal(err)
	}
	if err := b.SetBrightness(2); err != nil {
		t.Fatal(err)
	}

	header := EncodeS1144(b)[0][1:] // strip report ID

	if header[5] != 2<<4 {
		t.Errorf("brightness byte = 0x%02X, want 0x%02X", header[5], 2<<4)
	}
	if header[6] != 1<<7 {
		t.Errorf("flash byte = 0x%02X, want bit 7 only", header[6])
	}
	if header[7] != 1<<2 {
		t.Errorf("border byte = 0x%02X, want bit 2 only", header[7])
	}
	if got := header[8+0] & 0xF0; got != 0x70 {
		t.Errorf("line_conf[0] speed nibble = 0x%02X, want 0x70", got)
	}
	if got := header[8+7] & 0x0F; got != 8 {
		t.Errorf("line_conf[7] effect nibble = %d, want 8 (laser)", got)
	}
}

func TestEncodeS1144_MessageLengthsBigEndian(t *testing.T) {
	b := badge.New()
	if err := b.SetImage(0, slotBitmap(t, 3, 0x11)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetImage(5, slotBitmap(t, 300, 0x22)); err != nil {
		t.Fatal(err)
	}

	header := EncodeS1144(b)[0][1:]
	for i, want := range []uint16{3, 0, 0, 0, 0, 300, 0, 0} {
		got := binary.BigEndian.Uint16(header[16+2*i:])
		if got != want {
			t.Errorf("msg_len[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestEncodeS1144_PayloadConcatenation(t *testing.T) {
	b := badge.New()
	if err := b.SetImage(1, slotBitmap(t, 2, 0xAA)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetImage(6, slotBitmap(t, 1, 0x55)); err != nil {
		t.Fatal(err)
	}

	reports := EncodeS1144(b)
	// 3*11 = 33 payload bytes fit a single chunk after the header.
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	payload := reports[1][1:]
	for i := 0; i < 22; i++ {
		if payload[i] != 0xAA {
			t.Fatalf("payload byte %d = 0x%02X, want 0xAA (slot 1 first)", i, payload[i])
		}
	}
	for i := 22; i < 33; i++ {
		if payload[i] != 0x55 {
			t.Fatalf("payload byte %d = 0x%02X, want 0x55 (slot 6 second)", i, payload[i])
		}
	}
	for i := 33; i < ReportPayloadLen; i++ {
		if payload[i] != 0 {
			t.Fatalf("payload byte %d = 0x%02X, want zero padding", i, payload[i])
		}
	}
}

func TestEncodeS1144_ChunkCount(t *testing.T) {
	b := badge.New()
	// 12 byte-columns = 132 bytes of payload = 3 chunks of 64.
	if err := b.SetImage(0, slotBitmap(t, 12, 0x01)); err != nil {
		t.Fatal(err)
	}
	reports := EncodeS1144(b)
	if len(reports) != 4 {
		t.Errorf("got %d reports, want header + 3 chunks", len(reports))
	}
}

func TestEncodeS1144_UnsetSpeedEncodesAsSlowest(t *testing.T) {
	b := badge.New()
	if err := b.SetEffect(0, badge.EffectSnow); err != nil {
		t.Fatal(err)
	}
	header := EncodeS1144(b)[0][1:]
	if header[8] != uint8(badge.EffectSnow) {
		t.Errorf("line_conf[0] = 0x%02X, want effect code with zero speed nibble", header[8])
	}
}
