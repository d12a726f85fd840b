package catalog

import "context"

// Repository looks up and stores products by their typed keys. The methods
// accept only value types, never raw text, so every barcode reaching an
// implementation was validated at construction.
type Repository interface {
	// FindByBarcode returns the product registered under code.
	// Returns ErrProductNotFound when there is none.
	FindByBarcode(ctx context.Context, code Barcode) (Product, error)

	// FindByDescription returns every product whose description equals desc,
	// ordered by barcode. The result is empty, never nil, when nothing matches.
	FindByDescription(ctx context.Context, desc Description) ([]Product, error)

	// Save upserts p keyed by its barcode. Returns ErrDuplicateBarcode when
	// the barcode is already registered to a product with a different ID.
	Save(ctx context.Context, p Product) error
}
