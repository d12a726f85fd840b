package catalog

import (
	"database/sql/driver"
	"fmt"
)

// Description is free-form product text. Unlike Barcode it carries no
// invariant: any string, including the empty one, is a valid description.
// The type still buys nominal separation — a Description is not accepted
// where a Barcode is expected — at the same zero representation cost.
type Description struct {
	value string
}

// NewDescription wraps raw without validation; it is total.
func NewDescription(raw string) Description {
	return Description{value: raw}
}

// String returns the wrapped text.
func (d Description) String() string { return d.value }

// IsZero reports whether d is the zero value (the empty description).
func (d Description) IsZero() bool { return d.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (d Description) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. There is nothing to
// validate, so it never fails.
func (d *Description) UnmarshalText(text []byte) error {
	d.value = string(text)
	return nil
}

// Value implements driver.Valuer.
func (d Description) Value() (driver.Value, error) {
	return d.value, nil
}

// Scan implements sql.Scanner.
func (d *Description) Scan(src any) error {
	switch v := src.(type) {
	case string:
		d.value = v
		return nil
	case []byte:
		d.value = string(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Description", src)
	}
}
