package usecase

import (
	"context"
	"log/slog"
	"strings"

	"tirecatalog/src/core/domain"
	"tirecatalog/src/core/ports"
)

// TireService handles catalog CRUD and listing workflows.
type TireService struct {
	repo ports.TireRepository
	log  *slog.Logger
}

func NewTireService(repo ports.TireRepository, log *slog.Logger) *TireService {
	return &TireService{repo: repo, log: log}
}

// List returns one page of the catalog matching the filter. The page
// request is normalized before it reaches the store, so an out-of-range
// page or limit never produces an error, only defaults.
func (s *TireService) List(ctx context.Context, filter domain.TireFilter, page domain.PageRequest) (*domain.TirePage, error) {
	page = page.Normalize()

	list, err := s.repo.ListTires(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	tires := list.Tires
	if tires == nil {
		tires = []domain.Tire{}
	}
	return &domain.TirePage{
		Tires:      tires,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      list.Total,
		TotalPages: page.TotalPages(list.Total),
	}, nil
}

// Get returns a single tire by identity.
func (s *TireService) Get(ctx context.Context, id int64) (*domain.Tire, error) {
	return s.repo.GetTireByID(ctx, id)
}

// Create validates the required fields and inserts a new tire, returning
// the assigned identity.
func (s *TireService) Create(ctx context.Context, tire *domain.Tire) (int64, error) {
	if err := validateRequired(tire); err != nil {
		return 0, err
	}
	return s.repo.CreateTire(ctx, tire)
}

// Update validates the required fields and replaces every field of the
// identified tire.
func (s *TireService) Update(ctx context.Context, id int64, tire *domain.Tire) error {
	if err := validateRequired(tire); err != nil {
		return err
	}
	return s.repo.UpdateTire(ctx, id, tire)
}

// Delete removes a tire permanently.
func (s *TireService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteTire(ctx, id)
}

// validateRequired enforces the non-empty descriptive fields shared by
// create and update.
func validateRequired(tire *domain.Tire) error {
	switch {
	case strings.TrimSpace(tire.Brand) == "":
		return domain.NewValidationError("brand", "brand is required")
	case strings.TrimSpace(tire.Model) == "":
		return domain.NewValidationError("model", "model is required")
	case strings.TrimSpace(tire.Size) == "":
		return domain.NewValidationError("size", "size is required")
	}
	return nil
}
