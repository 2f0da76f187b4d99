package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"petadoption/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It mirrors the query semantics of the Mongo repository closely enough for
// handler-level tests: descending sort, skip/limit paging, unique emails.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// GetAll returns a page of users sorted descending by the requested field.
func (r *MockUserRepository) GetAll(_ context.Context, opts ListOptions) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, u)
	}
	sortUsers(userList, opts.Sort)

	return pageOf(userList, opts), nil
}

// GetByID returns a user by its ID, or nil if it does not exist.
func (r *MockUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByIDs returns the users matching any of the given ids.
func (r *MockUserRepository) GetByIDs(_ context.Context, ids []string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

// Create adds a new user, assigning an id and timestamps when missing and
// enforcing email uniqueness like the store's index does.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return errDuplicateEmail(user.Email)
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	if user.Pets == nil {
		user.Pets = []string{}
	}

	r.users[user.ID] = *user
	return nil
}

// Update modifies an existing user.
func (r *MockUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return errNotFoundForUpdate("user", user.ID)
	}
	r.users[user.ID] = *user
	return nil
}

// Count returns the total number of users.
func (r *MockUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users)), nil
}

// CountWithPets returns the number of users owning at least one pet.
func (r *MockUserRepository) CountWithPets(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, u := range r.users {
		if len(u.Pets) > 0 {
			total++
		}
	}
	return total, nil
}

func sortUsers(users []models.User, field string) {
	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i], users[j]
		switch field {
		case "updatedAt":
			return a.UpdatedAt.After(b.UpdatedAt)
		case "first_name":
			return a.FirstName > b.FirstName
		case "last_name":
			return a.LastName > b.LastName
		case "email":
			return a.Email > b.Email
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
