package repositories

import (
	"context"

	"petadoption/internal/models"
)

// PetRepository defines the interface for pet data access.
// GetByID returns (nil, nil) when no pet matches.
type PetRepository interface {
	List(ctx context.Context, filter PetFilter, opts ListOptions) ([]models.Pet, error)
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Pet, error)
	Create(ctx context.Context, pet *models.Pet) error
	Update(ctx context.Context, pet *models.Pet) error
	Count(ctx context.Context, filter PetFilter) (int64, error)
	SpeciesStats(ctx context.Context) ([]SpeciesStat, error)
}
