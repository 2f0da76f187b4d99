package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"petadoption/internal/models"
)

// MockPetRepository is an in-memory implementation of PetRepository.
type MockPetRepository struct {
	pets map[string]models.Pet
	mu   sync.RWMutex
}

// NewMockPetRepository creates a new instance of MockPetRepository.
func NewMockPetRepository() *MockPetRepository {
	return &MockPetRepository{
		pets: make(map[string]models.Pet),
	}
}

func petMatches(p models.Pet, f PetFilter) bool {
	if f.Species != "" && !strings.Contains(strings.ToLower(p.Species), strings.ToLower(f.Species)) {
		return false
	}
	if f.AgeMin != nil && p.Age < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && p.Age > *f.AgeMax {
		return false
	}
	if f.Owner != nil && (p.Owner == nil || *p.Owner != *f.Owner) {
		return false
	}
	if f.HasOwner != nil && *f.HasOwner != (p.Owner != nil) {
		return false
	}
	return true
}

// List returns a page of pets matching the filter, sorted descending.
func (r *MockPetRepository) List(_ context.Context, filter PetFilter, opts ListOptions) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	petList := make([]models.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		if petMatches(p, filter) {
			petList = append(petList, p)
		}
	}
	sortPets(petList, opts.Sort)

	return pageOf(petList, opts), nil
}

// GetByID returns a pet by its ID, or nil if it does not exist.
func (r *MockPetRepository) GetByID(_ context.Context, id string) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, nil
	}
	return &pet, nil
}

// GetByIDs returns the pets matching any of the given ids.
func (r *MockPetRepository) GetByIDs(_ context.Context, ids []string) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := []models.Pet{}
	for _, id := range ids {
		if p, ok := r.pets[id]; ok {
			pets = append(pets, p)
		}
	}
	return pets, nil
}

// Create adds a new pet, assigning an id and timestamps when missing.
func (r *MockPetRepository) Create(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	now := time.Now()
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = now
	}
	if pet.UpdatedAt.IsZero() {
		pet.UpdatedAt = now
	}

	r.pets[pet.ID] = *pet
	return nil
}

// Update modifies an existing pet.
func (r *MockPetRepository) Update(_ context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pets[pet.ID]; !ok {
		return errNotFoundForUpdate("pet", pet.ID)
	}
	r.pets[pet.ID] = *pet
	return nil
}

// Count returns the number of pets matching the filter.
func (r *MockPetRepository) Count(_ context.Context, filter PetFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, p := range r.pets {
		if petMatches(p, filter) {
			total++
		}
	}
	return total, nil
}

// SpeciesStats aggregates total/adopted/available counts per species.
func (r *MockPetRepository) SpeciesStats(_ context.Context) ([]SpeciesStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKey := map[string]*SpeciesStat{}
	for _, p := range r.pets {
		stat, ok := byKey[p.Species]
		if !ok {
			stat = &SpeciesStat{Species: p.Species}
			byKey[p.Species] = stat
		}
		stat.Total++
		if p.Owner != nil {
			stat.Adopted++
		}
	}

	stats := make([]SpeciesStat, 0, len(byKey))
	for _, stat := range byKey {
		stat.Available = stat.Total - stat.Adopted
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Species < stats[j].Species })

	return stats, nil
}

func sortPets(pets []models.Pet, field string) {
	sort.SliceStable(pets, func(i, j int) bool {
		a, b := pets[i], pets[j]
		switch field {
		case "updatedAt":
			return a.UpdatedAt.After(b.UpdatedAt)
		case "name":
			return a.Name > b.Name
		case "species":
			return a.Species > b.Species
		case "age":
			return a.Age > b.Age
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
