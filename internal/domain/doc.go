// Package domain models National Weather Service (NWS) tornado warning
// products and their rendered overlay form.
//
// # Data Source
//
// Warnings come from the NOAAPort text archive mirrored by the Iowa
// Environmental Mesonet. Each calendar day has one plain-text document at
//
//	.../{yyyy}/{mm}/{dd}/text/noaaport/TOR_{yyyy}{mm}{dd}.txt
//
// containing every TOR product issued that day, concatenated and separated by
// the literal "$$" token.
//
// # Product Conventions
//
// Geometry:
//
//	A path block of the form "LAT...LON <count> <dddd> <dddd> ..." where each
//	4-5 digit scalar is a coordinate component in hundredths of a degree.
//	The scalar immediately after the marker is a point-count header, not a
//	coordinate. Remaining scalars are consumed in (latitude, longitude) pairs.
//
// Issuance time:
//
//	The VTEC line carries a ".YYMMDDTHHMMZ-" token, e.g. ".211210T2045Z-"
//	for 2021-12-10 20:45 UTC.
//
// Severity:
//
//	Derived from keyword matching on the full product text, most severe
//	first: "EMERGENCY", then "PARTICULARLY DANGEROUS SITUATION", then
//	"OBSERVED"/"reported" (a confirmed tornado), otherwise radar-indicated.
//	Each tier maps to a fixed overlay color and line width.
//
// # Validity
//
// A record is discarded when it contains "TEST" (test products), is shorter
// than 50 characters (separator debris), or contains "404" (archive error
// bodies that leaked into the document).
package domain
