// Package domain contains the core domain model for the tire catalog.
//
// This package defines:
//   - Tire: the catalog entry entity
//   - TireFilter, PageRequest, TirePage: list/query value objects
//   - FilterFacets: the derived distinct-values view
//   - Domain Errors: business rule violation errors
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
