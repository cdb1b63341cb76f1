package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// pathRe matches the product's path block: the "LAT...LON" marker followed
	// by a whitespace-separated run of integer scalars. The first scalar is a
	// short point-count header; the rest are 4-5 digit coordinate components
	// in hundredths of a degree, validated in extractPolygon.
	pathRe = regexp.MustCompile(`LAT\.\.\.LON((?:\s+\d+)+)`)

	// timeRe captures the issuance time from the VTEC token, e.g.
	// ".211210T2045Z-" -> "211210T2045".
	timeRe = regexp.MustCompile(`.(\d{6}T\d{4})Z-`)
)

const issuedLayout = "060102T1504"

// ExtractWarning parses geometry, issuance time, and severity out of a valid
// report record. A record without a recognizable path block or time token is a
// processing fault, not a skip: the returned error is an *ExtractionFault.
func ExtractWarning(record string) (Warning, error) {
	polygon, err := extractPolygon(record)
	if err != nil {
		return Warning{}, err
	}

	issuedAt, err := extractIssuedAt(record)
	if err != nil {
		return Warning{}, err
	}

	color, width := classifySeverity(record)

	return Warning{
		Polygon:   polygon,
		IssuedAt:  issuedAt,
		Color:     color,
		LineWidth: width,
	}, nil
}

// extractPolygon reads the path block's coordinate scalars, divides each by
// 100, pairs them as (lat, lon), and closes the ring by repeating the first
// vertex.
func extractPolygon(record string) ([]Coordinate, error) {
	m := pathRe.FindStringSubmatch(record)
	if m == nil {
		return nil, &ExtractionFault{Reason: "no LAT...LON path block"}
	}

	scalars := strings.Fields(m[1])
	// Drop the point-count header preceding the coordinates.
	scalars = scalars[1:]

	if len(scalars) == 0 || len(scalars)%2 != 0 {
		return nil, &ExtractionFault{
			Reason: fmt.Sprintf("path block has %d coordinate scalars, want a positive even count", len(scalars)),
		}
	}

	polygon := make([]Coordinate, 0, len(scalars)/2+1)
	for i := 0; i < len(scalars); i += 2 {
		lat, err := parseHundredths(scalars[i])
		if err != nil {
			return nil, err
		}
		lon, err := parseHundredths(scalars[i+1])
		if err != nil {
			return nil, err
		}
		polygon = append(polygon, Coordinate{Lat: lat, Lon: lon})
	}

	polygon = append(polygon, polygon[0])
	return polygon, nil
}

func parseHundredths(scalar string) (float64, error) {
	if len(scalar) < 4 || len(scalar) > 5 {
		return 0, &ExtractionFault{Reason: fmt.Sprintf("coordinate scalar %q is not 4-5 digits", scalar)}
	}
	v, err := strconv.ParseFloat(scalar, 64)
	if err != nil {
		return 0, &ExtractionFault{Reason: fmt.Sprintf("bad coordinate scalar %q", scalar)}
	}
	return v / 100, nil
}

func extractIssuedAt(record string) (time.Time, error) {
	m := timeRe.FindStringSubmatch(record)
	if m == nil {
		return time.Time{}, &ExtractionFault{Reason: "no issuance time token"}
	}
	t, err := time.Parse(issuedLayout, m[1])
	if err != nil {
		return time.Time{}, &ExtractionFault{Reason: fmt.Sprintf("bad issuance time %q", m[1])}
	}
	return t, nil
}
