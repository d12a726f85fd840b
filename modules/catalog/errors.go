package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBarcode is wrapped by every error returned from NewBarcode.
	ErrInvalidBarcode = errors.New("barcode has not the right format")

	// ErrProductNotFound is returned when no product matches the given barcode.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateBarcode is returned when saving a product whose barcode is
	// already registered to a different product.
	ErrDuplicateBarcode = errors.New("barcode already registered to another product")
)

// InvalidBarcodeError carries the rejected input alongside ErrInvalidBarcode.
type InvalidBarcodeError struct {
	Input string
}

func (e *InvalidBarcodeError) Error() string {
	return fmt.Sprintf("the given code %s has not the right format", e.Input)
}

func (e *InvalidBarcodeError) Unwrap() error { return ErrInvalidBarcode }
