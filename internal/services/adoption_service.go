package services

import (
	"context"
	"log"
	"math"
	"time"

	"petadoption/internal/apperrors"
	"petadoption/internal/models"
	"petadoption/internal/repositories"
	"petadoption/pkg/pagination"
	"petadoption/pkg/rabbitmq"
)

// AdoptionService handles the pet ownership state transitions and the
// aggregate adoption statistics.
type AdoptionService struct {
	petRepo  repositories.PetRepository
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewAdoptionService creates a new AdoptionService. mqClient may be nil.
func NewAdoptionService(petRepo repositories.PetRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *AdoptionService {
	return &AdoptionService{
		petRepo:  petRepo,
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// AdoptionFilter holds the optional filters for the adoption listing.
type AdoptionFilter struct {
	Species string
	AgeMin  *int
	AgeMax  *int
}

// ListPets returns a page of pets matching the adoption filters, owners
// resolved, plus the total count.
func (s *AdoptionService) ListPets(ctx context.Context, filter AdoptionFilter, p pagination.Params) ([]models.PetWithOwner, int64, error) {
	repoFilter := repositories.PetFilter{
		Species: filter.Species,
		AgeMin:  filter.AgeMin,
		AgeMax:  filter.AgeMax,
	}
	opts := repositories.ListOptions{Limit: p.Limit, Skip: p.Skip(), Sort: p.Sort}

	pets, err := s.petRepo.List(ctx, repoFilter, opts)
	if err != nil {
		return nil, 0, apperrors.Store("error retrieving pets for adoption", err)
	}
	total, err := s.petRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, apperrors.Store("error counting pets for adoption", err)
	}

	resolved, err := resolvePetOwners(ctx, pets, s.userRepo)
	if err != nil {
		return nil, 0, apperrors.Store("error resolving pet owners", err)
	}
	return resolved, total, nil
}

// GetPet returns a single pet with its owner resolved.
func (s *AdoptionService) GetPet(ctx context.Context, id string) (*models.PetWithOwner, error) {
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

// Adopt assigns the pet to the user. The pet must exist, the user must exist,
// and the pet must not already have an owner. The pet and user documents are
// written in two separate, non-atomic steps (pet first); if the user write
// fails after the pet write succeeded, the two documents are left
// inconsistent. Returns the updated pet with the owner resolved.
func (s *AdoptionService) Adopt(ctx context.Context, petID, userID string) (*models.PetWithOwner, error) {
	if userID == "" {
		return nil, apperrors.Validation("the adopting user's ID is required")
	}

	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, apperrors.Store("error retrieving pet", err)
	}
	if pet == nil {
		return nil, apperrors.NotFound("pet not found")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("error retrieving user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if pet.Owner != nil {
		return nil, apperrors.Conflict("this pet already has an owner")
	}

	now := time.Now()
	pet.Owner = &userID
	pet.UpdatedAt = now
	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, apperrors.Store("error adopting pet", err)
	}

	user.Pets = append(user.Pets, petID)
	user.UpdatedAt = now
	if err := s.userRepo.Update(ctx, user); err != nil {
		// The pet write already succeeded; the user's pet list is now stale.
		return nil, apperrors.Store("error updating adopter's pet list", err)
	}

	s.publishEvent("pet.adopted", petID, userID)

	return &models.PetWithOwner{Pet: *pet, OwnerInfo: user}, nil
}

// Return releases the pet back for adoption. Only the pet's current owner may
// return it; anyone else gets a permission error. Like Adopt, the pet and
// user writes are separate and non-atomic.
func (s *AdoptionService) Return(ctx context.Context, petID, userID string) (*models.Pet, error) {
	if userID == "" {
		return nil, apperrors.Validation("the user's ID is required")
	}

	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, apperrors.Store("error retrieving pet", err)
	}
	if pet == nil {
		return nil, apperrors.NotFound("pet not found")
	}

	if pet.Owner == nil || *pet.Owner != userID {
		return nil, apperrors.Permission("you do not have permission to return this pet")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("error retrieving user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	now := time.Now()
	pet.Owner = nil
	pet.UpdatedAt = now
	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, apperrors.Store("error returning pet", err)
	}

	kept := make([]string, 0, len(user.Pets))
	for _, id := range user.Pets {
		if id != petID {
			kept = append(kept, id)
		}
	}
	user.Pets = kept
	user.UpdatedAt = now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperrors.Store("error updating owner's pet list", err)
	}

	s.publishEvent("pet.returned", petID, userID)

	return pet, nil
}

// ListByUser returns a page of the pets owned by the given user.
func (s *AdoptionService) ListByUser(ctx context.Context, userID string, p pagination.Params) ([]models.PetWithOwner, int64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, apperrors.Store("error retrieving user", err)
	}
	if user == nil {
		return nil, 0, apperrors.NotFound("user not found")
	}

	filter := repositories.PetFilter{Owner: &userID}
	opts := repositories.ListOptions{Limit: p.Limit, Skip: p.Skip(), Sort: p.Sort}

	pets, err := s.petRepo.List(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.Store("error retrieving user's pets", err)
	}
	total, err := s.petRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.Store("error counting user's pets", err)
	}

	resolved, err := resolvePetOwners(ctx, pets, s.userRepo)
	if err != nil {
		return nil, 0, apperrors.Store("error resolving pet owners", err)
	}
	return resolved, total, nil
}

// OverviewStats summarizes the adoption state of the pet population.
type OverviewStats struct {
	TotalPets     int64   `json:"totalPets"`
	AdoptedPets   int64   `json:"adoptedPets"`
	AvailablePets int64   `json:"availablePets"`
	AdoptionRate  float64 `json:"adoptionRate"`
}

// UserStats summarizes user participation in adoptions.
type UserStats struct {
	TotalUsers            int64   `json:"totalUsers"`
	UsersWithPets         int64   `json:"usersWithPets"`
	AdoptionParticipation float64 `json:"adoptionParticipation"`
}

// AdoptionStats is the stats overview payload.
type AdoptionStats struct {
	Overview     OverviewStats             `json:"overview"`
	Users        UserStats                 `json:"users"`
	SpeciesStats []repositories.SpeciesStat `json:"speciesStats"`
}

// Stats computes the adoption statistics overview.
func (s *AdoptionService) Stats(ctx context.Context) (*AdoptionStats, error) {
	totalPets, err := s.petRepo.Count(ctx, repositories.PetFilter{})
	if err != nil {
		return nil, apperrors.Store("error counting pets", err)
	}

	adopted := true
	adoptedPets, err := s.petRepo.Count(ctx, repositories.PetFilter{HasOwner: &adopted})
	if err != nil {
		return nil, apperrors.Store("error counting adopted pets", err)
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Store("error counting users", err)
	}
	usersWithPets, err := s.userRepo.CountWithPets(ctx)
	if err != nil {
		return nil, apperrors.Store("error counting users with pets", err)
	}

	speciesStats, err := s.petRepo.SpeciesStats(ctx)
	if err != nil {
		return nil, apperrors.Store("error aggregating species stats", err)
	}

	return &AdoptionStats{
		Overview: OverviewStats{
			TotalPets:     totalPets,
			AdoptedPets:   adoptedPets,
			AvailablePets: totalPets - adoptedPets,
			AdoptionRate:  rate(adoptedPets, totalPets),
		},
		Users: UserStats{
			TotalUsers:            totalUsers,
			UsersWithPets:         usersWithPets,
			AdoptionParticipation: rate(usersWithPets, totalUsers),
		},
		SpeciesStats: speciesStats,
	}, nil
}

// rate returns part/whole as a percentage rounded to two decimals, 0 when the
// whole is 0.
func rate(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*100*100) / 100
}

// publishEvent sends an adoption event when a broker is configured. Publishing
// is best-effort and never fails the request.
func (s *AdoptionService) publishEvent(event, petID, userID string) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishAdoptionEvent(event, petID, userID); err != nil {
		log.Printf("Failed to publish %s event for pet %s: %v", event, petID, err)
	}
}
