package httpapi

import "regexp"

// queryPairRe captures key=value pairs from a raw query string: pairs are
// introduced by "?" or "&", keys and values being runs of non-"&"/"=" characters.
var queryPairRe = regexp.MustCompile(`(?:\?|&)([^&=]+)=([^&=]+)`)

// parseParams extracts all parseable pairs into a map. Later occurrences of a
// duplicate key overwrite earlier ones; duplicates are not expected in
// practice. Unparseable fragments are ignored; missing required keys are the
// date-range resolver's concern.
func parseParams(raw string) map[string]string {
	params := make(map[string]string)
	for _, m := range queryPairRe.FindAllStringSubmatch(raw, -1) {
		params[m[1]] = m[2]
	}
	return params
}
