package services

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"petadoption/internal/apperrors"
	"petadoption/internal/models"
	"petadoption/internal/repositories"
)

// mockPassword is the constant placeholder password shared by all generated
// users. Only its bcrypt hash is ever stored.
const mockPassword = "coder123"

var petSpecies = []string{"Dog", "Cat", "Bird", "Fish", "Hamster", "Rabbit"}

var breedsBySpecies = map[string][]string{
	"Dog":     {"Labrador", "Golden Retriever", "German Shepherd", "Bulldog", "Poodle"},
	"Cat":     {"Persian", "Siamese", "Maine Coon", "British Shorthair", "Ragdoll"},
	"Bird":    {"Parakeet", "Cockatiel", "Canary", "Finch", "Lovebird"},
	"Fish":    {"Goldfish", "Betta", "Guppy", "Tetra", "Angelfish"},
	"Hamster": {"Syrian", "Dwarf", "Roborovski", "Campbell", "Winter White"},
	"Rabbit":  {"Holland Lop", "Netherland Dwarf", "Rex", "Angora", "Lionhead"},
}

// MockingService generates fixture users and pets and seeds them into the
// store.
type MockingService struct {
	userRepo repositories.UserRepository
	petRepo  repositories.PetRepository
	validate *validator.Validate
}

// NewMockingService creates a new MockingService.
func NewMockingService(userRepo repositories.UserRepository, petRepo repositories.PetRepository) *MockingService {
	return &MockingService{
		userRepo: userRepo,
		petRepo:  petRepo,
		validate: validator.New(),
	}
}

// GenerateUsers produces count synthetic users with randomized names, emails,
// roles and timestamps. The placeholder password is hashed once per batch.
// The uuid ids are placeholders; SeedData discards them before persisting.
func (s *MockingService) GenerateUsers(count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(mockPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Store("failed to hash mock password", err)
	}

	now := time.Now()
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		role := models.RoleUser
		if gofakeit.Bool() {
			role = models.RoleAdmin
		}

		users = append(users, models.User{
			ID:        uuid.New().String(),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     gofakeit.Email(),
			Password:  string(hashed),
			Role:      role,
			Pets:      []string{},
			CreatedAt: gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
			UpdatedAt: gofakeit.DateRange(now.AddDate(0, 0, -3), now),
		})
	}
	return users, nil
}

// GeneratePets produces count synthetic pets: a random species from the fixed
// set, a breed from that species' candidate list, age in [1,15], no owner.
func (s *MockingService) GeneratePets(count int) []models.Pet {
	now := time.Now()
	pets := make([]models.Pet, 0, count)
	for i := 0; i < count; i++ {
		species := gofakeit.RandomString(petSpecies)
		breeds := breedsBySpecies[species]

		pets = append(pets, models.Pet{
			ID:        uuid.New().String(),
			Name:      gofakeit.PetName(),
			Species:   species,
			Breed:     gofakeit.RandomString(breeds),
			Age:       gofakeit.Number(1, 15),
			Owner:     nil,
			CreatedAt: gofakeit.DateRange(now.AddDate(-1, 0, 0), now),
			UpdatedAt: gofakeit.DateRange(now.AddDate(0, 0, -3), now),
		})
	}
	return pets
}

// SeedUserError records a user record that failed to insert.
type SeedUserError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// SeedPetError records a pet record that failed to insert.
type SeedPetError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// SeedUserOutcome reports the user half of a seeding run.
type SeedUserOutcome struct {
	Created int             `json:"created"`
	Errors  []SeedUserError `json:"errors"`
}

// SeedPetOutcome reports the pet half of a seeding run.
type SeedPetOutcome struct {
	Created int            `json:"created"`
	Errors  []SeedPetError `json:"errors"`
}

// SeedResult reports how a seeding run went.
type SeedResult struct {
	Users SeedUserOutcome `json:"users"`
	Pets  SeedPetOutcome  `json:"pets"`
}

// SeedData generates userCount users and petCount pets and inserts them
// one by one, letting the store assign real ids. A failed insert is recorded
// and does not abort the rest of the batch.
func (s *MockingService) SeedData(ctx context.Context, userCount, petCount int) (*SeedResult, error) {
	if userCount < 0 || petCount < 0 {
		return nil, apperrors.Validation("count values must be non-negative")
	}

	result := &SeedResult{
		Users: SeedUserOutcome{Errors: []SeedUserError{}},
		Pets:  SeedPetOutcome{Errors: []SeedPetError{}},
	}

	if userCount > 0 {
		users, err := s.GenerateUsers(userCount)
		if err != nil {
			return nil, err
		}
		for i := range users {
			user := users[i]
			user.ID = "" // let the store assign the real id
			if err := s.insertUser(ctx, &user); err != nil {
				result.Users.Errors = append(result.Users.Errors, SeedUserError{
					Email: user.Email,
					Error: err.Error(),
				})
				continue
			}
			result.Users.Created++
		}
	}

	if petCount > 0 {
		for _, pet := range s.GeneratePets(petCount) {
			pet.ID = ""
			if err := s.insertPet(ctx, &pet); err != nil {
				result.Pets.Errors = append(result.Pets.Errors, SeedPetError{
					Name:  pet.Name,
					Error: err.Error(),
				})
				continue
			}
			result.Pets.Created++
		}
	}

	return result, nil
}

func (s *MockingService) insertUser(ctx context.Context, user *models.User) error {
	if err := s.validate.Struct(user); err != nil {
		return err
	}
	return s.userRepo.Create(ctx, user)
}

func (s *MockingService) insertPet(ctx context.Context, pet *models.Pet) error {
	if err := s.validate.Struct(pet); err != nil {
		return err
	}
	return s.petRepo.Create(ctx, pet)
}

// StaticPets returns the fixed five-record sample payload served by the
// mockingpets endpoint.
func (s *MockingService) StaticPets() []models.Pet {
	owner := func(id string) *string { return &id }
	ts := func(year int, month time.Month, day, hour, min int) time.Time {
		return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
	}

	return []models.Pet{
		{
			ID: "507f1f77bcf86cd799439011", Name: "Buddy", Species: "Dog",
			Breed: "Golden Retriever", Age: 3, Owner: owner("507f1f77bcf86cd799439012"),
			CreatedAt: ts(2023, time.January, 15, 10, 30), UpdatedAt: ts(2023, time.January, 15, 10, 30),
		},
		{
			ID: "507f1f77bcf86cd799439013", Name: "Whiskers", Species: "Cat",
			Breed: "Persian", Age: 2, Owner: owner("507f1f77bcf86cd799439014"),
			CreatedAt: ts(2023, time.February, 20, 14, 45), UpdatedAt: ts(2023, time.February, 20, 14, 45),
		},
		{
			ID: "507f1f77bcf86cd799439015", Name: "Polly", Species: "Bird",
			Breed: "Parakeet", Age: 1, Owner: owner("507f1f77bcf86cd799439016"),
			CreatedAt: ts(2023, time.March, 10, 9, 15), UpdatedAt: ts(2023, time.March, 10, 9, 15),
		},
		{
			ID: "507f1f77bcf86cd799439017", Name: "Nemo", Species: "Fish",
			Breed: "Goldfish", Age: 1, Owner: owner("507f1f77bcf86cd799439018"),
			CreatedAt: ts(2023, time.April, 5, 16, 20), UpdatedAt: ts(2023, time.April, 5, 16, 20),
		},
		{
			ID: "507f1f77bcf86cd799439019", Name: "Fluffy", Species: "Hamster",
			Breed: "Syrian", Age: 1, Owner: owner("507f1f77bcf86cd799439020"),
			CreatedAt: ts(2023, time.May, 12, 11, 30), UpdatedAt: ts(2023, time.May, 12, 11, 30),
		},
	}
}
