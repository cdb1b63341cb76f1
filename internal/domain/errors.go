package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses at the transport boundary.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// FetchError reports a failed archive document retrieval: connection errors,
// non-2xx statuses, and bodies that are not valid UTF-8.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionFault marks a record that passed the validity filter but lacks a
// required geometry or timestamp token. It fails the whole request rather than
// skipping the record, so malformed products surface instead of silently
// thinning the overlay.
type ExtractionFault struct {
	Reason string
}

func (e *ExtractionFault) Error() string {
	return "extraction fault: " + e.Reason
}
