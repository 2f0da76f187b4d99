package models

import "time"

// Pet represents an animal registered for adoption.
// Owner is nil while the pet is available for adoption.
type Pet struct {
	ID        string    `json:"_id" bson:"_id,omitempty" validate:"omitempty"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Species   string    `json:"species" bson:"species" validate:"required"`
	Breed     string    `json:"breed" bson:"breed" validate:"required"`
	Age       int       `json:"age" bson:"age" validate:"gte=0"`
	Owner     *string   `json:"owner" bson:"owner"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Available reports whether the pet can be adopted.
func (p *Pet) Available() bool {
	return p.Owner == nil
}

// PetWithOwner is the API shape for endpoints that resolve the owner reference.
type PetWithOwner struct {
	Pet
	OwnerInfo *User `json:"owner_info"`
}
