// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"tirecatalog/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// TireList bundles one page of rows with the total count of the filtered
// set. Pagination math (total pages) is computed by the caller.
type TireList struct {
	Tires []domain.Tire
	Total int
}

// TireRepository covers all catalog storage operations.
type TireRepository interface {
	Repository

	// ListTires returns the page of tires matching the filter, newest
	// first, plus the unpaginated total. The request must be normalized.
	ListTires(ctx context.Context, filter domain.TireFilter, page domain.PageRequest) (*TireList, error)

	// GetTireByID returns a single tire or a not-found error.
	GetTireByID(ctx context.Context, id int64) (*domain.Tire, error)

	// CreateTire inserts a tire and returns the assigned identity.
	// A colliding (brand, model, size, position) tuple yields a conflict error.
	CreateTire(ctx context.Context, tire *domain.Tire) (int64, error)

	// UpdateTire replaces every mutable column of the identified tire and
	// refreshes its update timestamp. Not-found when no row matches,
	// conflict when the unique tuple collides.
	UpdateTire(ctx context.Context, id int64, tire *domain.Tire) error

	// DeleteTire removes a tire permanently. Not-found when no row matches.
	DeleteTire(ctx context.Context, id int64) error

	// GetFilterFacets returns the distinct brand/model/size/position values
	// currently present, each sorted ascending.
	GetFilterFacets(ctx context.Context) (*domain.FilterFacets, error)
}
