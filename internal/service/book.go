package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

type CreateBookInput struct {
	Title       string              `json:"title"`
	Author      string              `json:"author"`
	Price       *float64            `json:"price"`
	Publication string              `json:"publication"`
	Cover       string              `json:"cover"`
	Status      *string             `json:"status"`
	PublisherID *primitive.ObjectID `json:"publisherID"`
}

// BookService defines the use cases for books.
type BookService interface {
	Create(ctx context.Context, in CreateBookInput) (*model.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

// Create defaults the status to draft and persists the book. Length and
// price constraints are enforced by the repository.
func (s *bookService) Create(ctx context.Context, in CreateBookInput) (*model.Book, error) {
	book := &model.Book{
		Title:       in.Title,
		Author:      in.Author,
		Price:       in.Price,
		Publication: in.Publication,
		Cover:       in.Cover,
		Status:      valueOr(in.Status, model.StatusDraft),
		PublisherID: in.PublisherID,
	}
	if anyEmpty(book.Title, book.Author, book.Publication, book.Cover, book.Status) {
		return nil, ErrInvalidParameters
	}
	return s.repo.Create(ctx, book)
}
