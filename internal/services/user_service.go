package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"petadoption/internal/apperrors"
	"petadoption/internal/models"
	"petadoption/internal/repositories"
	"petadoption/pkg/pagination"
)

// UserService handles business logic related to users.
type UserService struct {
	userRepo repositories.UserRepository
	petRepo  repositories.PetRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, petRepo repositories.PetRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		petRepo:  petRepo,
	}
}

// ListUsers returns a page of users with their pet references resolved, plus
// the total user count for pagination.
func (s *UserService) ListUsers(ctx context.Context, p pagination.Params) ([]models.UserWithPets, int64, error) {
	opts := repositories.ListOptions{Limit: p.Limit, Skip: p.Skip(), Sort: p.Sort}

	users, err := s.userRepo.GetAll(ctx, opts)
	if err != nil {
		return nil, 0, apperrors.Store("error retrieving users", err)
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.Store("error counting users", err)
	}

	resolved, err := resolveUserPets(ctx, users, s.petRepo)
	if err != nil {
		return nil, 0, apperrors.Store("error resolving user pets", err)
	}
	return resolved, total, nil
}

// GetUser returns a single user with pets resolved.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.UserWithPets, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Store("error retrieving user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	resolved, err := resolveUserPets(ctx, []models.User{*user}, s.petRepo)
	if err != nil {
		return nil, apperrors.Store("error resolving user pets", err)
	}
	return &resolved[0], nil
}

// CountUsers returns the total number of users.
func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, apperrors.Store("error counting users", err)
	}
	return total, nil
}

// CreateUser persists a new user. The plaintext password is hashed exactly
// once here; callers that already hold a hash (the fixture generator) insert
// through the repository directly.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Store("failed to hash password", err)
	}
	user.Password = string(hashed)
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return apperrors.Store("error creating user", err)
	}
	return nil
}
