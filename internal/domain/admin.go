package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdminUser backs the admin-panel login. Exactly one seeded record is
// expected; email uniqueness is a convention, not a store constraint.
type AdminUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Name         *string            `bson:"name,omitempty" json:"name"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}
