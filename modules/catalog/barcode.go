package catalog

import (
	"database/sql/driver"
	"fmt"
	"regexp"
)

// barcodePattern pins the accepted format: one digit, six digits, six digits,
// hyphen-separated. ASCII digits only, full-string match, no trimming.
var barcodePattern = regexp.MustCompile(`^\d-\d{6}-\d{6}$`)

// Barcode is a validated product code. It wraps a single string field, so a
// Barcode occupies exactly as much memory as the string it wraps, and the
// unexported field makes NewBarcode the only construction path outside this
// package. Barcodes are immutable and comparable; == delegates to string
// equality on the wrapped value.
//
// The zero value is invalid and is never returned by NewBarcode; use IsZero
// to detect it where a Barcode field may be unset.
type Barcode struct {
	value string
}

// NewBarcode validates raw against the 1-6-6 digit grouping and wraps it
// unchanged. The returned error wraps ErrInvalidBarcode and carries the
// rejected input verbatim.
func NewBarcode(raw string) (Barcode, error) {
	if !barcodePattern.MatchString(raw) {
		return Barcode{}, &InvalidBarcodeError{Input: raw}
	}
	return Barcode{value: raw}, nil
}

// MustBarcode is like NewBarcode but panics on invalid input.
// Intended for literals in tests and seed data.
func MustBarcode(raw string) Barcode {
	b, err := NewBarcode(raw)
	if err != nil {
		panic(err)
	}
	return b
}

// String returns the barcode text exactly as it was validated.
func (b Barcode) String() string { return b.value }

// IsZero reports whether b is the zero value.
func (b Barcode) IsZero() bool { return b.value == "" }

// MarshalText implements encoding.TextMarshaler. encoding/json picks it up
// as well, so a Barcode serializes as a plain JSON string.
func (b Barcode) MarshalText() ([]byte, error) {
	return []byte(b.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It re-validates the
// input, so decoding cannot smuggle in a malformed barcode.
func (b *Barcode) UnmarshalText(text []byte) error {
	parsed, err := NewBarcode(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value implements driver.Valuer so a Barcode binds as a plain text parameter.
func (b Barcode) Value() (driver.Value, error) {
	return b.value, nil
}

// Scan implements sql.Scanner, re-validating rows as they leave storage.
func (b *Barcode) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return b.UnmarshalText([]byte(v))
	case []byte:
		return b.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Barcode", src)
	}
}
