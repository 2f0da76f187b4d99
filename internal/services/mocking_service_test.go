package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"petadoption/internal/apperrors"
	"petadoption/internal/models"
	"petadoption/internal/repositories"
	"petadoption/internal/services"
)

var breedsBySpecies = map[string][]string{
	"Dog":     {"Labrador", "Golden Retriever", "German Shepherd", "Bulldog", "Poodle"},
	"Cat":     {"Persian", "Siamese", "Maine Coon", "British Shorthair", "Ragdoll"},
	"Bird":    {"Parakeet", "Cockatiel", "Canary", "Finch", "Lovebird"},
	"Fish":    {"Goldfish", "Betta", "Guppy", "Tetra", "Angelfish"},
	"Hamster": {"Syrian", "Dwarf", "Roborovski", "Campbell", "Winter White"},
	"Rabbit":  {"Holland Lop", "Netherland Dwarf", "Rex", "Angora", "Lionhead"},
}

func TestMockingService_GenerateUsers(t *testing.T) {
	service := services.NewMockingService(repositories.NewMockUserRepository(), repositories.NewMockPetRepository())

	users, err := service.GenerateUsers(5)
	assert.NoError(t, err)
	assert.Len(t, users, 5)

	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.FirstName)
		assert.NotEmpty(t, u.LastName)
		assert.NotEmpty(t, u.Email)
		assert.Contains(t, []string{models.RoleUser, models.RoleAdmin}, u.Role)
		assert.Empty(t, u.Pets)
		assert.False(t, u.CreatedAt.IsZero())

		// The stored password must be the bcrypt hash of the placeholder.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("coder123")))
		assert.NotEqual(t, "coder123", u.Password)
	}
}

func TestMockingService_GeneratePets(t *testing.T) {
	service := services.NewMockingService(repositories.NewMockUserRepository(), repositories.NewMockPetRepository())

	pets := service.GeneratePets(20)
	assert.Len(t, pets, 20)

	for _, p := range pets {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Nil(t, p.Owner)
		assert.GreaterOrEqual(t, p.Age, 1)
		assert.LessOrEqual(t, p.Age, 15)

		breeds, ok := breedsBySpecies[p.Species]
		assert.True(t, ok, "unexpected species %q", p.Species)
		assert.Contains(t, breeds, p.Breed)
	}
}

func TestMockingService_SeedData(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	petRepo := repositories.NewMockPetRepository()
	service := services.NewMockingService(userRepo, petRepo)

	result, err := service.SeedData(context.Background(), 3, 5)

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Users.Created)
	assert.Equal(t, 5, result.Pets.Created)
	assert.Empty(t, result.Users.Errors)
	assert.Empty(t, result.Pets.Errors)

	userTotal, _ := userRepo.Count(context.Background())
	petTotal, _ := petRepo.Count(context.Background(), repositories.PetFilter{})
	assert.Equal(t, int64(3), userTotal)
	assert.Equal(t, int64(5), petTotal)
}

func TestMockingService_SeedData_NegativeCounts(t *testing.T) {
	service := services.NewMockingService(repositories.NewMockUserRepository(), repositories.NewMockPetRepository())

	result, err := service.SeedData(context.Background(), -1, 2)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestMockingService_SeedData_PartialFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	service := services.NewMockingService(userRepo, petRepo)

	// The second insert fails; the batch must carry on.
	petRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	petRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("duplicate key error")).Once()
	petRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := service.SeedData(context.Background(), 0, 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Pets.Created)
	assert.Len(t, result.Pets.Errors, 1)
	assert.Contains(t, result.Pets.Errors[0].Error, "duplicate key")
	assert.NotEmpty(t, result.Pets.Errors[0].Name)
	petRepo.AssertExpectations(t)
}

func TestMockingService_StaticPets(t *testing.T) {
	service := services.NewMockingService(repositories.NewMockUserRepository(), repositories.NewMockPetRepository())

	pets := service.StaticPets()

	assert.Len(t, pets, 5)
	assert.Equal(t, "507f1f77bcf86cd799439011", pets[0].ID)
	assert.Equal(t, "Buddy", pets[0].Name)
	assert.Equal(t, "Golden Retriever", pets[0].Breed)
	for _, p := range pets {
		assert.NotNil(t, p.Owner)
	}

	// The sample payload is fixed across calls.
	assert.Equal(t, pets, service.StaticPets())
}
