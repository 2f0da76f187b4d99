package repositories

import (
	"context"

	"petadoption/internal/models"
)

// UserRepository defines the interface for user data access.
// Lookups return (nil, nil) when no user matches; translating that into a
// not-found error is the service layer's job.
type UserRepository interface {
	GetAll(ctx context.Context, opts ListOptions) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
	CountWithPets(ctx context.Context) (int64, error)
}
