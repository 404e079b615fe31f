package usecase

import (
	"context"
	"log/slog"

	"tirecatalog/src/core/domain"
	"tirecatalog/src/core/ports"
)

// FilterService exposes the distinct-values view used by the front-end
// filter selectors.
type FilterService struct {
	repo ports.TireRepository
	log  *slog.Logger
}

func NewFilterService(repo ports.TireRepository, log *slog.Logger) *FilterService {
	return &FilterService{repo: repo, log: log}
}

// Facets recomputes the distinct brand/model/size/position values.
func (s *FilterService) Facets(ctx context.Context) (*domain.FilterFacets, error) {
	facets, err := s.repo.GetFilterFacets(ctx)
	if err != nil {
		return nil, err
	}
	// Never render null arrays to the client.
	if facets.Brands == nil {
		facets.Brands = []string{}
	}
	if facets.Models == nil {
		facets.Models = []string{}
	}
	if facets.Sizes == nil {
		facets.Sizes = []string{}
	}
	if facets.Positions == nil {
		facets.Positions = []string{}
	}
	return facets, nil
}
