// SPDX-License-Identifier: MIT

package device

import (
	"fmt"

	"github.com/led-badge/lbadge/pkg/badge"
	"github.com/led-badge/lbadge/pkg/bitmap"
)

// USB identifiers of the B1248 firmware family.
const (
	b1248VendorID  = 0x0483
	b1248ProductID = 0x5750
)

// maxTotalColumns is the display capacity of a B1248 badge: every row
// report carries 64 data bytes, the first of which stays zero, so the
// byte-columns of all eight slots combined must fit in 63.
const maxTotalColumns = ReportPayloadLen - 1

var b1248Greeting = []byte("Hello")

// b1248Config is the content of the configuration report: a packed effect
// byte and an offset/length table entry per slot.
type b1248Config struct {
	effect [badge.NumSlots]byte
	offset [badge.NumSlots]int
	length [badge.NumSlots]int
}

// load fills the configuration from the badge state. Slot offsets are
// cumulative byte-column counts; a configuration whose slots would overrun
// the row report is rejected rather than silently truncated.
func (c *b1248Config) load(b *badge.Badge) error {
	offset := 0
	for i := 0; i < badge.NumSlots; i++ {
		slot := b.Slot(i)

		c.effect[i] = slot.SpeedBits()<<4 | uint8(slot.Effect)&0b111
		if slot.Frame {
			c.effect[i] |= 1 << 7
		}
		if slot.Blink {
			c.effect[i] |= 1 << 3
		}

		c.offset[i] = offset
		c.length[i] = slot.Bitmap.WidthBytes()
		offset += c.length[i]
	}
	if offset > maxTotalColumns {
		return fmt.Errorf("%w: %d byte-columns, at most %d fit",
			ErrMessageTooLong, offset, maxTotalColumns)
	}
	return nil
}

// configReport lays the configuration out as the second report:
//
//	[0]     report ID (0x00)
//	[1]     0x00
//	[2-9]   effect[i] = (frame << 7) | (speed_bits << 4) | (blink << 3) | effect
//	[10]    0x00
//	[11-42] 4 bytes per slot: 0x08, offset, 0x00, length
func (c *b1248Config) configReport() Report {
	r := newReport()
	copy(r[2:10], c.effect[:])
	for i := 0; i < badge.NumSlots; i++ {
		entry := r[11+4*i:]
		entry[0] = 0x08
		entry[1] = byte(c.offset[i])
		entry[2] = 0x00
		entry[3] = byte(c.length[i])
	}
	return r
}

// EncodeB1248 turns a badge configuration into the B1248 report sequence:
// greeting, configuration, one report per bitmap row with every slot's
// bytes at its table offset, and an all-zero terminator.
func EncodeB1248(b *badge.Badge) ([]Report, error) {
	var cfg b1248Config
	if err := cfg.load(b); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, 2+bitmap.Height+1)

	greeting := newReport()
	copy(greeting[1:], b1248Greeting)
	reports = append(reports, greeting, cfg.configReport())

	for row := 0; row < bitmap.Height; row++ {
		r := newReport()
		for i := 0; i < badge.NumSlots; i++ {
			data := b.Slot(i).Bitmap.Data()
			for col := 0; col < cfg.length[i]; col++ {
				r[cfg.offset[i]+1+col] = data[col*bitmap.Height+row]
			}
		}
		reports = append(reports, r)
	}

	reports = append(reports, newReport())
	return reports, nil
}

func sendB1248(b *badge.Badge, tr Transport) error {
	reports, err := EncodeB1248(b)
	if err != nil {
		return err
	}
	dev, err := tr.Open(b1248VendorID, b1248ProductID)
	if err != nil {
		return err
	}
	defer dev.Close()
	return writeReports(dev, reports)
}
