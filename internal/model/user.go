package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultUserRole   = "user"
	DefaultUserStatus = "pending"
)

// User is an account stored in the users collection. The password is kept as
// supplied and never serialized back to clients.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required"`
	Password  string             `bson:"password" json:"-" validate:"required"`
	Role      string             `bson:"role" json:"role" validate:"required"`
	Status    string             `bson:"status" json:"status" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
