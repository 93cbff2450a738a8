package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bookapi/internal/database"
	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// BookMongo is a MongoDB implementation of repository.BookRepository.
type BookMongo struct {
	coll *mongo.Collection
}

func NewBookMongo(db *mongo.Database) *BookMongo {
	return &BookMongo{coll: db.Collection(database.BooksCollection)}
}

var _ repository.BookRepository = (*BookMongo)(nil)

// Create applies schema defaults, validates and inserts a book.
// PublisherID is stored as given; the referenced user is not looked up.
func (r *BookMongo) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	out := *book
	out.SetDefaults()
	out.CreatedAt = now()
	out.UpdatedAt = out.CreatedAt
	if out.ID.IsZero() {
		out.ID = primitive.NewObjectID()
	}

	if err := insertOne(ctx, r.coll, "book", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
