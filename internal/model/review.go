package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a rating of a Book written by a User.
type Review struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Rating    *float64            `bson:"rating" json:"rating" validate:"required"`
	Comment   string              `bson:"comment" json:"comment" validate:"required"`
	Status    string              `bson:"status" json:"status" validate:"required,oneof=draft published"`
	Book      *primitive.ObjectID `bson:"book,omitempty" json:"book,omitempty"`
	Publisher *primitive.ObjectID `bson:"publisher,omitempty" json:"publisher,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (r *Review) SetDefaults() {
	if r.Status == "" {
		r.Status = StatusDraft
	}
}
