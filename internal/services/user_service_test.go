package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"petadoption/internal/apperrors"
	"petadoption/internal/models"
	"petadoption/internal/repositories"
	"petadoption/internal/services"
)

func TestUserService_ListUsers(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	service := services.NewUserService(userRepo, petRepo)

	users := []models.User{
		{ID: "user-1", FirstName: "Ana", Pets: []string{"pet-1"}},
		{ID: "user-2", FirstName: "Luis", Pets: []string{}},
	}
	pets := []models.Pet{{ID: "pet-1", Name: "Buddy", Species: "Dog", Breed: "Labrador", Age: 3}}

	expectedOpts := repositories.ListOptions{Limit: 10, Skip: 10, Sort: "createdAt"}
	userRepo.On("GetAll", mock.Anything, expectedOpts).Return(users, nil).Once()
	userRepo.On("Count", mock.Anything).Return(int64(12), nil).Once()
	petRepo.On("GetByIDs", mock.Anything, []string{"pet-1"}).Return(pets, nil).Once()

	params := defaultParams()
	params.Page = 2

	resolved, total, err := service.ListUsers(context.Background(), params)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, resolved, 2)
	assert.Len(t, resolved[0].PetsInfo, 1)
	assert.Equal(t, "Buddy", resolved[0].PetsInfo[0].Name)
	assert.Empty(t, resolved[1].PetsInfo)
	userRepo.AssertExpectations(t)
	petRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	service := services.NewUserService(userRepo, petRepo)

	user := &models.User{ID: "user-1", FirstName: "Ana", Pets: []string{"pet-1", "pet-2"}}
	pets := []models.Pet{
		{ID: "pet-1", Name: "Buddy", Species: "Dog", Breed: "Labrador", Age: 3},
		{ID: "pet-2", Name: "Whiskers", Species: "Cat", Breed: "Persian", Age: 2},
	}

	userRepo.On("GetByID", mock.Anything, "user-1").Return(user, nil).Once()
	petRepo.On("GetByIDs", mock.Anything, []string{"pet-1", "pet-2"}).Return(pets, nil).Once()

	resolved, err := service.GetUser(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", resolved.ID)
	assert.Len(t, resolved.PetsInfo, 2)
	userRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	service := services.NewUserService(userRepo, petRepo)

	userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil).Once()

	resolved, err := service.GetUser(context.Background(), "ghost")

	assert.Error(t, err)
	assert.Nil(t, resolved)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	petRepo := new(MockPetRepository)
	service := services.NewUserService(userRepo, petRepo)

	var created *models.User
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
	}).Return(nil).Once()

	user := &models.User{FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com", Password: "secret123"}
	err := service.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
	assert.Equal(t, models.RoleUser, created.Role)
	userRepo.AssertExpectations(t)
}
