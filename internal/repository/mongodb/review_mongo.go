package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookapi/internal/database"
	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// ReviewMongo is a MongoDB implementation of repository.ReviewRepository.
type ReviewMongo struct {
	coll *mongo.Collection
}

func NewReviewMongo(db *mongo.Database) *ReviewMongo {
	return &ReviewMongo{coll: db.Collection(database.ReviewsCollection)}
}

var _ repository.ReviewRepository = (*ReviewMongo)(nil)

func (r *ReviewMongo) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	out := *review
	out.SetDefaults()
	out.CreatedAt = now()
	out.UpdatedAt = out.CreatedAt
	if out.ID.IsZero() {
		out.ID = primitive.NewObjectID()
	}

	if err := insertOne(ctx, r.coll, "review", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
