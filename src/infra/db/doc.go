// Package db provides database connection and migration management.
//
// This package is responsible for:
//   - Lazy, one-time PostgreSQL connection pool initialization
//   - Parameterized query/exec passthroughs with scoped acquire/release
//   - Connection health checks
//   - Embedded goose schema migrations
//
// Example usage:
//
//	pg := db.New(cfg.Database, log)
//	defer pg.Close()
//	rows, err := pg.Query(ctx, "SELECT ...", args...)
package db
