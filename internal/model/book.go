package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Book is a title in the books collection. Title is unique (see migration).
// PublisherID references a User and is not checked for existence.
type Book struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title" validate:"required,min=5,max=100"`
	Author      string              `bson:"author" json:"author" validate:"required,min=3,max=15"`
	Price       *float64            `bson:"price,omitempty" json:"price,omitempty" validate:"omitnil,positive"`
	Publication string              `bson:"publication" json:"publication" validate:"required,min=5,max=50"`
	Cover       string              `bson:"cover" json:"cover" validate:"required"`
	Status      string              `bson:"status" json:"status" validate:"required,oneof=draft published"`
	PublisherID *primitive.ObjectID `bson:"publisherID,omitempty" json:"publisherID,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// SetDefaults fills schema defaults for fields the caller left empty.
func (b *Book) SetDefaults() {
	if b.Status == "" {
		b.Status = StatusDraft
	}
}
