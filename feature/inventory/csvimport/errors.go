package csvimport

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrTooShort is returned when the input lacks a header row or a data row.
	ErrEmptyOrTooShort = errors.New("CSV file must have a header row and at least one data row")

	// ErrMalformedHeader is the sentinel wrapped by MalformedHeaderError.
	ErrMalformedHeader = errors.New("CSV is missing a required header")

	// ErrRead wraps I/O failures of the underlying reader.
	ErrRead = errors.New("failed to read csv")
)

// MalformedHeaderError reports the first required column missing from the header row.
type MalformedHeaderError struct {
	// Column is the lowercased header name, e.g. "mrp".
	Column string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("CSV is missing required header: %q", e.Column)
}

func (e *MalformedHeaderError) Unwrap() error {
	return ErrMalformedHeader
}

// Warning records a numeric cell that could not be parsed and was read as 0.
type Warning struct {
	// Line is the 1-based line where the row starts.
	Line int `json:"line"`
	// Column is the normalized header of the cell.
	Column string `json:"column"`
	// Value is the raw cell text.
	Value string `json:"value"`
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s=%q is not a number, using 0", w.Line, w.Column, w.Value)
}
