package models

import (
	"time"

	"github.com/google/uuid"
)

// Shelf is a named physical storage location. Names are unique by convention,
// not enforced by the store.
type Shelf struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	LocationDescription string    `json:"locationDescription"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"lastUpdated"`
}

type CreateShelfRequest struct {
	Name                string `json:"name" validate:"required,min=2,max=50"`
	LocationDescription string `json:"locationDescription" validate:"required,min=5,max=100"`
	Notes               string `json:"notes,omitempty" validate:"omitempty,max=200"`
}

type UpdateShelfRequest struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	LocationDescription *string `json:"locationDescription,omitempty" validate:"omitempty,min=5,max=100"`
	Notes               *string `json:"notes,omitempty" validate:"omitempty,max=200"`
}
