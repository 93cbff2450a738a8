package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookapi/internal/database"
	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	coll *mongo.Collection
}

// NewUserMongo creates a UserMongo backed by the users collection of db.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(database.UsersCollection)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// Create inserts a user and returns the stored document.
func (r *UserMongo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	out := *user
	out.CreatedAt = now()
	out.UpdatedAt = out.CreatedAt
	if out.ID.IsZero() {
		out.ID = primitive.NewObjectID()
	}

	if err := insertOne(ctx, r.coll, "user", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
