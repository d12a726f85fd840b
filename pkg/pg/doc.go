// Package pg manages PostgreSQL connectivity on top of jackc/pgx.
//
// Connect builds a pgxpool.Pool from an env-tagged Config with retry on
// startup, Migrate applies goose migrations through the same pool, and the
// Is*Error helpers classify common pgx/PostgreSQL failures (no rows, unique
// violations, foreign-key violations) so callers can map them to domain
// errors without importing pgx themselves.
package pg
