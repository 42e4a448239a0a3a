package models

import (
	"time"

	"github.com/google/uuid"
)

// Dimensions are stored in centimetres. Every side is optional on its own so a
// partially measured item can still be recorded.
type Dimensions struct {
	Length *float64 `json:"length,omitempty" validate:"omitempty,gt=0"`
	Width  *float64 `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
}

// InventoryItem is one stocked product. Location holds a shelf name by
// convention only; there is no foreign key to the shelves table, and deleting a
// shelf leaves items pointing at the old name.
type InventoryItem struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Category    string      `json:"category"`
	Quantity    int         `json:"quantity"`
	Location    string      `json:"location"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Weight      *float64    `json:"weight,omitempty"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"lastUpdated"`
}

type CreateInventoryItemRequest struct {
	Name        string      `json:"name" validate:"required,min=3,max=100"`
	SKU         string      `json:"sku" validate:"required,min=3,max=50,sku"`
	Category    string      `json:"category" validate:"required,min=2,max=50"`
	Quantity    int         `json:"quantity" validate:"gte=0"`
	Location    string      `json:"location" validate:"required"`
	Description string      `json:"description,omitempty" validate:"omitempty,max=500"`
	Tags        []string    `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=100"`
	ImageURL    string      `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Weight      *float64    `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
}

type UpdateInventoryItemRequest struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	SKU         *string     `json:"sku,omitempty" validate:"omitempty,min=3,max=50,sku"`
	Category    *string     `json:"category,omitempty" validate:"omitempty,min=2,max=50"`
	Quantity    *int        `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Location    *string     `json:"location,omitempty" validate:"omitempty,min=1"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Tags        *[]string   `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=100"`
	ImageURL    *string     `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Weight      *float64    `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
}

// ListInventoryFilter narrows the catalog listing. Search matches name, SKU and
// category case-insensitively.
type ListInventoryFilter struct {
	Search   string
	Category string
	Page     int
	PageSize int
}
