// Package repo contains the PostgreSQL implementation of the catalog
// repository port defined in src/core/ports.
//
// List queries are assembled by a small internal builder that accumulates
// condition fragments alongside their bound values; untrusted input is only
// ever passed as a query parameter, never concatenated into SQL text.
//
// Error classification follows the store's signals: SQLSTATE 23505 becomes
// a domain conflict error, pgx.ErrNoRows and zero rows affected become
// domain not-found errors, and everything else propagates unchanged.
package repo
