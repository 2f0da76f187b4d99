package services

import (
	"context"

	"petadoption/internal/apperrors"
	"petadoption/internal/models"
	"petadoption/internal/repositories"
	"petadoption/pkg/pagination"
)

// PetService handles business logic related to pets.
type PetService struct {
	petRepo  repositories.PetRepository
	userRepo repositories.UserRepository
}

// NewPetService creates a new PetService.
func NewPetService(petRepo repositories.PetRepository, userRepo repositories.UserRepository) *PetService {
	return &PetService{
		petRepo:  petRepo,
		userRepo: userRepo,
	}
}

func (s *PetService) list(ctx context.Context, filter repositories.PetFilter, p pagination.Params) ([]models.PetWithOwner, int64, error) {
	opts := repositories.ListOptions{Limit: p.Limit, Skip: p.Skip(), Sort: p.Sort}

	pets, err := s.petRepo.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Store("error retrieving pets", err)
	}
	total, err := s.petRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Store("error counting pets", err)
	}

	resolved, err := resolvePetOwners(ctx, pets, s.userRepo)
	if err != nil {
		return nil, 0, apperrors.Store("error resolving pet owners", err)
	}
	return resolved, total, nil
}

// ListPets returns a page of pets with owners resolved, plus the total count.
func (s *PetService) ListPets(ctx context.Context, p pagination.Params) ([]models.PetWithOwner, int64, error) {
	return s.list(ctx, repositories.PetFilter{}, p)
}

// ListBySpecies returns a page of pets whose species contains the given value,
// case-insensitively.
func (s *PetService) ListBySpecies(ctx context.Context, species string, p pagination.Params) ([]models.PetWithOwner, int64, error) {
	return s.list(ctx, repositories.PetFilter{Species: species}, p)
}

// GetPet returns a single pet with its owner resolved.
func (s *PetService) GetPet(ctx context.Context, id string) (*models.PetWithOwner, error) {
	pet, err := s.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store("error retrieving pet", err)
	}
	if pet == nil {
		return nil, apperrors.NotFound("pet not found")
	}

	resolved, err := resolvePetOwners(ctx, []models.Pet{*pet}, s.userRepo)
	if err != nil {
		return nil, apperrors.Store("error resolving pet owner", err)
	}
	return &resolved[0], nil
}

// CountPets returns the total number of pets.
func (s *PetService) CountPets(ctx context.Context) (int64, error) {
	total, err := s.petRepo.Count(ctx, repositories.PetFilter{})
	if err != nil {
		return 0, apperrors.Store("error counting pets", err)
	}
	return total, nil
}
