// Package catalog provides validated value types for product identification
// and a lookup repository built on top of them.
//
// The package is organized around two newtypes over string:
//
//   - Barcode – a product code constrained to the 1-6-6 digit grouping
//     (e.g. "8-000137-001620"). The only way to obtain one is NewBarcode,
//     which validates the raw text, so every live Barcode satisfies the
//     format invariant.
//   - Description – free-form product text. It carries no invariant at all;
//     any string, including the empty one, is a valid description. The
//     asymmetry with Barcode is deliberate: not every wrapped value needs
//     a smart constructor, only a distinct type.
//
// Both types wrap a single unexported string field, so holding one costs
// exactly as much as holding the raw string, and both are comparable, so ==
// delegates to string equality and either type can serve as a map key.
// Because they are distinct defined types, the compiler rejects passing a
// Description where a Barcode is expected and vice versa; the only way to
// turn description text into a barcode is NewBarcode(d.String()), which
// re-validates.
//
// # Architecture
//
// Repository is the lookup contract: FindByBarcode, FindByDescription and
// Save all take the value types, never raw text, which means every value
// crossing into a repository was validated beforehand. Three implementations
// ship with the package:
//
//   - MemoryRepository – mutex-guarded map keyed by Barcode.
//   - PostgresRepository – pgx-backed persistent store. Value types cross
//     the driver boundary through their sql.Scanner/driver.Valuer codecs,
//     so rows are re-validated as they leave the database.
//   - CachedRepository – read-through decorator over any Repository; cache
//     backends implement the small Cache interface (MemoryCache, RedisCache).
//
// Router exposes the repository over HTTP with chi. Raw request text is
// converted to value types at that boundary and nowhere else.
//
// # Usage
//
//	code, err := catalog.NewBarcode("8-000137-001620")
//	if err != nil {
//	    // the error message carries the rejected input verbatim
//	}
//
//	repo := catalog.NewMemoryRepository()
//	_ = repo.Save(ctx, catalog.NewProduct(code, catalog.NewDescription("Still water 1l")))
//	product, err := repo.FindByBarcode(ctx, code)
//
// # Error Handling
//
// NewBarcode failures wrap ErrInvalidBarcode and expose the rejected input
// through InvalidBarcodeError; detect them with errors.Is / errors.As.
// Repositories report ErrProductNotFound and ErrDuplicateBarcode the same
// way. Description construction has no error path.
package catalog
