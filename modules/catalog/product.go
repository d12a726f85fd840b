package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is the catalog record. Repositories store and return it whole;
// nothing in this package interprets it beyond the barcode and description
// lookup keys.
type Product struct {
	ID          uuid.UUID   `json:"id"`
	Barcode     Barcode     `json:"barcode"`
	Description Description `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewProduct assembles a product with a fresh ID. Both arguments are value
// types, so the barcode was necessarily validated before this point.
func NewProduct(code Barcode, desc Description) Product {
	return Product{
		ID:          uuid.New(),
		Barcode:     code,
		Description: desc,
		CreatedAt:   time.Now().UTC(),
	}
}
