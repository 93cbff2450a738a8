// Package repository defines the persistence operations the services depend
// on. Implementations live in subpackages (mongodb) and contain no business
// logic beyond schema enforcement at the store boundary.
package repository

import (
	"context"

	"bookapi/internal/model"
)

// UserRepository inserts users.
type UserRepository interface {
	// Create validates the user against its schema, assigns an identifier and
	// timestamps, and inserts it. It returns the stored document.
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

// BookRepository inserts books.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
}

// ReviewRepository inserts reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
}
