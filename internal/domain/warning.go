package domain

import (
	"strings"
	"time"
)

// recordSeparator delimits individual products within a daily archive document.
const recordSeparator = "$$"

// Coordinate is a WGS-84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Warning is a validated, parsed tornado warning: a closed polygon ring, the
// issuance time, and the severity styling for the overlay.
type Warning struct {
	Polygon   []Coordinate
	IssuedAt  time.Time
	Color     string // "R G B" as text
	LineWidth float64
}

// SplitRecords splits a daily archive document into individual report records
// on the "$$" separator. Records are raw substrings; validity is a separate
// concern, see IsValidRecord.
func SplitRecords(document string) []string {
	return strings.Split(document, recordSeparator)
}

// IsValidRecord reports whether a report record is worth extracting.
// Test products, separator debris under 50 characters, and records carrying
// archive "404" error text are rejected.
func IsValidRecord(record string) bool {
	return !strings.Contains(record, "TEST") &&
		len(record) >= 50 &&
		!strings.Contains(record, "404")
}

// classifySeverity maps a record's text onto a fixed (color, line width) tier.
// Evaluated most severe first; the first matching keyword wins, so a record
// containing both "EMERGENCY" and "OBSERVED" styles as an emergency.
func classifySeverity(record string) (color string, lineWidth float64) {
	switch {
	case strings.Contains(record, "EMERGENCY"):
		return "0 0 0", 5
	case strings.Contains(record, "PARTICULARLY DANGEROUS SITUATION"):
		return "255 0 255", 4
	case strings.Contains(record, "OBSERVED") || strings.Contains(record, "reported"):
		return "150 0 0", 3.5
	default:
		return "255 0 0", 3
	}
}
