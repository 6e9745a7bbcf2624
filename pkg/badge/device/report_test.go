// SPDX-License-Identifier: MIT

package device

import (
	"bytes"
	"testing"
)

func TestChunkReports_Empty(t *testing.T) {
	if got := ChunkReports(nil); len(got) != 0 {
		t.Errorf("empty payload should yield no reports, got %d", len(got))
	}
}

func TestChunkReports_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		payloadLen int
		want       int
	}{
		{"one byte", 1, 1},
		{"exactly one payload", 64, 1},
		{"one byte over", 65, 2},
		{"two payloads", 128, 2},
		{"arbitrary", 200, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.payloadLen)
			for i := range payload {
				payload[i] = byte(i + 1)
			}
			reports := ChunkReports(payload)
			if len(reports) != tt.want {
				t.Fatalf("got %d reports, want %d", len(reports), tt.want)
			}
			var reassembled []byte
			for _, r := range reports {
				if len(r) != ReportLen {
					t.Fatalf("report length %d, want %d", len(r), ReportLen)
				}
				if r[0] != 0x00 {
					t.Fatalf("report ID byte = 0x%02X, want 0x00", r[0])
				}
				reassembled = append(reassembled, r[1:]...)
			}
			if !bytes.Equal(reassembled[:tt.payloadLen], payload) {
				t.Error("reassembled payload differs from input")
			}
			for _, b := range reassembled[tt.payloadLen:] {
				if b != 0 {
					t.Fatal("padding bytes must be zero")
				}
			}
		})
	}
}

func TestChunkReports_SecondReportPadding(t *testing.T) {
	payload := make([]byte, 65)
	for i := range payload {
		payload[i] = 0xAB
	}
	reports := ChunkReports(payload)
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	second := reports[1]
	if second[1] != 0xAB {
		t.Errorf("second report byte 1 = 0x%02X, want 0xAB", second[1])
	}
	for i := 2; i < ReportLen; i++ {
		if second[i] != 0 {
			t.Fatalf("second report byte %d = 0x%02X, want zero padding", i, second[i])
		}
	}
}
