// SPDX-License-Identifier: MIT

package device

// Both firmware families consume fixed 65-byte HID output reports: one
// report-ID byte (always zero) followed by 64 payload bytes, zero padded.
const (
	// ReportLen is the full report size written to the device.
	ReportLen = 65
	// ReportPayloadLen is the usable payload per report.
	ReportPayloadLen = ReportLen - 1
)

// Report is one fixed-size unit written to the device.
type Report []byte

// newReport returns a zeroed report with the report-ID byte in place.
func newReport() Report {
	return make(Report, ReportLen)
}

// ChunkReports splits a payload into 65-byte reports: each carries the
// report-ID byte, up to 64 payload bytes and zero padding. An empty
// payload yields no reports. Deterministic and order preserving.
func ChunkReports(payload []byte) []Report {
	reports := make([]Report, 0, (len(payload)+ReportPayloadLen-1)/ReportPayloadLen)
	for off := 0; off < len(payload); off += ReportPayloadLen {
		end := off + ReportPayloadLen
		if end > len(payload) {
			end = len(payload)
		}
		r := newReport()
		copy(r[1:], payload[off:end])
		reports = append(reports, r)
	}
	return reports
}
