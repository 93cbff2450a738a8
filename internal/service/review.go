package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

type CreateReviewInput struct {
	Rating    *float64            `json:"rating"`
	Comment   string              `json:"comment"`
	Status    *string             `json:"status"`
	Book      *primitive.ObjectID `json:"book"`
	Publisher *primitive.ObjectID `json:"publisher"`
}

// ReviewService defines the use cases for reviews.
type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) Create(ctx context.Context, in CreateReviewInput) (*model.Review, error) {
	if in.Rating == nil {
		return nil, ErrInvalidParameters
	}
	review := &model.Review{
		Rating:    in.Rating,
		Comment:   in.Comment,
		Status:    valueOr(in.Status, model.StatusDraft),
		Book:      in.Book,
		Publisher: in.Publisher,
	}
	if anyEmpty(review.Comment, review.Status) {
		return nil, ErrInvalidParameters
	}
	return s.repo.Create(ctx, review)
}
