package models

import "time"

// Role values allowed for a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user of the adoption platform.
type User struct {
	ID        string    `json:"_id" bson:"_id,omitempty" validate:"omitempty"`
	FirstName string    `json:"first_name" bson:"first_name" validate:"required"`
	LastName  string    `json:"last_name" bson:"last_name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Password  string    `json:"-" bson:"password" validate:"required"` // bcrypt hash, never serialized
	Role      string    `json:"role" bson:"role" validate:"oneof=user admin"`
	Pets      []string  `json:"pets" bson:"pets"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UserWithPets is the API shape for endpoints that resolve the user's pet references.
type UserWithPets struct {
	User
	PetsInfo []Pet `json:"pets_info"`
}
