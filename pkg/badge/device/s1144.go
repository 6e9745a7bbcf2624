// SPDX-License-Identifier: MIT

package device

import (
	"encoding/binary"

	"github.com/led-badge/lbadge/pkg/badge"
	"github.com/led-badge/lbadge/pkg/bitmap"
)

// USB identifiers of the S1144 firmware family.
const (
	s1144VendorID  = 0x0416
	s1144ProductID = 0x5020
)

// s1144HeaderLen is the size of the protocol header carried in the first
// report.
//
// Header layout (all offsets fixed, msg_len big-endian):
//
//	[0-4]   magic "wang\0"
//	[5]     brightness << 4
//	[6]     flash: bit i set iff slot i blinks
//	[7]     border: bit i set iff slot i has a frame
//	[8-15]  line_conf[i] = ((speed_i - 1) << 4) | effect_i
//	[16-31] msg_len[i]: byte-column count of slot i (u16 BE)
const s1144HeaderLen = 32

var s1144Magic = [5]byte{'w', 'a', 'n', 'g', 0x00}

// EncodeS1144 turns a badge configuration into the S1144 report sequence:
// one header report followed by the concatenated slot bitmaps in slot
// order, chunked into 64-byte payloads. The header report is always
// emitted, even when every slot is empty.
func EncodeS1144(b *badge.Badge) []Report {
	header := make([]byte, s1144HeaderLen)
	copy(header[0:5], s1144Magic[:])
	header[5] = b.Brightness << 4

	payload := make([]byte, 0, badge.NumSlots*bitmap.Height)
	for i := 0; i < badge.NumSlots; i++ {
		slot := b.Slot(i)
		if slot.Blink {
			header[6] |= 1 << i
		}
		if slot.Frame {
			header[7] |= 1 << i
		}
		header[8+i] = slot.SpeedBits()<<4 | uint8(slot.Effect)
		binary.BigEndian.PutUint16(header[16+2*i:], uint16(slot.Bitmap.WidthBytes()))
		payload = append(payload, slot.Bitmap.Data()...)
	}

	first := newReport()
	copy(first[1:], header)
	return append([]Report{first}, ChunkReports(payload)...)
}

func sendS1144(b *badge.Badge, tr Transport) error {
	dev, err := tr.Open(s1144VendorID, s1144ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()
	return writeReports(dev, EncodeS1144(b))
}
