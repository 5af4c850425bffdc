package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyStatus is the lifecycle state of a listing. Stored as plain text,
// but only the three known values pass validation.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusPending   PropertyStatus = "pending"
	StatusSold      PropertyStatus = "sold"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}

type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description *string            `bson:"description,omitempty" json:"description"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Address     string             `bson:"address" json:"address" validate:"required"`
	City        string             `bson:"city" json:"city" validate:"required"`
	State       string             `bson:"state" json:"state" validate:"required"`
	Country     string             `bson:"country" json:"country" validate:"required"`
	Bedrooms    *int               `bson:"bedrooms,omitempty" json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *float64           `bson:"bathrooms,omitempty" json:"bathrooms" validate:"omitempty,gte=0"`
	SquareFeet  *int               `bson:"square_feet,omitempty" json:"square_feet" validate:"omitempty,gte=0"`
	Images      []string           `bson:"images" json:"images"`
	Status      PropertyStatus     `bson:"status" json:"status" validate:"oneof=available pending sold"`
	Featured    bool               `bson:"featured" json:"featured"`
	ListedAt    *time.Time         `bson:"listed_at,omitempty" json:"listed_at"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ApplyDefaults fills the schema defaults on a freshly decoded payload.
// Must run before Validate so an omitted status still passes the oneof check.
func (p *Property) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// PropertyPatch is the typed partial-update payload: one optional field per
// updatable attribute. Unset fields leave the stored value alone.
type PropertyPatch struct {
	Title       *string         `json:"title" validate:"omitempty,min=1"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price" validate:"omitempty,gte=0"`
	Address     *string         `json:"address" validate:"omitempty,min=1"`
	City        *string         `json:"city" validate:"omitempty,min=1"`
	State       *string         `json:"state" validate:"omitempty,min=1"`
	Country     *string         `json:"country" validate:"omitempty,min=1"`
	Bedrooms    *int            `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *float64        `json:"bathrooms" validate:"omitempty,gte=0"`
	SquareFeet  *int            `json:"square_feet" validate:"omitempty,gte=0"`
	Images      *[]string       `json:"images"`
	Status      *PropertyStatus `json:"status" validate:"omitempty,oneof=available pending sold"`
	Featured    *bool           `json:"featured"`
}

// Changes returns the set fields keyed by their stored document names.
func (p PropertyPatch) Changes() map[string]any {
	c := map[string]any{}
	if p.Title != nil {
		c["title"] = *p.Title
	}
	if p.Description != nil {
		c["description"] = *p.Description
	}
	if p.Price != nil {
		c["price"] = *p.Price
	}
	if p.Address != nil {
		c["address"] = *p.Address
	}
	if p.City != nil {
		c["city"] = *p.City
	}
	if p.State != nil {
		c["state"] = *p.State
	}
	if p.Country != nil {
		c["country"] = *p.Country
	}
	if p.Bedrooms != nil {
		c["bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		c["bathrooms"] = *p.Bathrooms
	}
	if p.SquareFeet != nil {
		c["square_feet"] = *p.SquareFeet
	}
	if p.Images != nil {
		c["images"] = *p.Images
	}
	if p.Status != nil {
		c["status"] = *p.Status
	}
	if p.Featured != nil {
		c["featured"] = *p.Featured
	}
	return c
}

// Apply merges the patch into dst, field-level overwrite only.
func (p PropertyPatch) Apply(dst *Property) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Description != nil {
		dst.Description = p.Description
	}
	if p.Price != nil {
		dst.Price = p.Price
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.City != nil {
		dst.City = *p.City
	}
	if p.State != nil {
		dst.State = *p.State
	}
	if p.Country != nil {
		dst.Country = *p.Country
	}
	if p.Bedrooms != nil {
		dst.Bedrooms = p.Bedrooms
	}
	if p.Bathrooms != nil {
		dst.Bathrooms = p.Bathrooms
	}
	if p.SquareFeet != nil {
		dst.SquareFeet = p.SquareFeet
	}
	if p.Images != nil {
		dst.Images = *p.Images
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}

// PropertyFilter narrows a listing query; nil fields match everything.
type PropertyFilter struct {
	Featured *bool
}
