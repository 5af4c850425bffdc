package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case OfferPending, OfferAccepted, OfferRejected:
		return true
	}
	return false
}

// Offer is a buyer's bid on a property. PropertyID is a reference by
// convention only; nothing checks the property actually exists.
type Offer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PropertyID string             `bson:"property_id" json:"property_id" validate:"required"`
	BuyerName  string             `bson:"buyer_name" json:"buyer_name" validate:"required"`
	BuyerEmail string             `bson:"buyer_email" json:"buyer_email" validate:"required,email"`
	Amount     *float64           `bson:"amount" json:"amount" validate:"required,gte=0"`
	Message    *string            `bson:"message,omitempty" json:"message"`
	Status     OfferStatus        `bson:"status" json:"status" validate:"oneof=pending accepted rejected"`
	UpdatedAt  *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (o *Offer) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OfferPending
	}
}

type OfferPatch struct {
	BuyerName  *string      `json:"buyer_name" validate:"omitempty,min=1"`
	BuyerEmail *string      `json:"buyer_email" validate:"omitempty,email"`
	Amount     *float64     `json:"amount" validate:"omitempty,gte=0"`
	Message    *string      `json:"message"`
	Status     *OfferStatus `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
}

func (p OfferPatch) Changes() map[string]any {
	c := map[string]any{}
	if p.BuyerName != nil {
		c["buyer_name"] = *p.BuyerName
	}
	if p.BuyerEmail != nil {
		c["buyer_email"] = *p.BuyerEmail
	}
	if p.Amount != nil {
		c["amount"] = *p.Amount
	}
	if p.Message != nil {
		c["message"] = *p.Message
	}
	if p.Status != nil {
		c["status"] = *p.Status
	}
	return c
}

func (p OfferPatch) Apply(dst *Offer) {
	if p.BuyerName != nil {
		dst.BuyerName = *p.BuyerName
	}
	if p.BuyerEmail != nil {
		dst.BuyerEmail = *p.BuyerEmail
	}
	if p.Amount != nil {
		dst.Amount = p.Amount
	}
	if p.Message != nil {
		dst.Message = p.Message
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}

type OfferFilter struct {
	PropertyID *string
}
