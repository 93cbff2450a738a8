package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"bookapi/internal/errs"
	"bookapi/internal/model"
)

var fixedNow = time.Date(2024, 5, 1, 10, 30, 0, 123456789, time.UTC)

func withFixedClock(t *testing.T) {
	orig := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = orig })
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: books.users index: email_1 dup key",
	})
}

func float(v float64) *float64 { return &v }

func TestUserMongo_Create(t *testing.T) {
	withFixedClock(t)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewUserMongo(mt.DB)

		in := &model.User{Name: "Ada", Email: "ada@x.com", Password: "secret", Role: "user", Status: "pending"}
		got, err := repo.Create(ctx, in)

		require.NoError(mt, err)
		assert.False(mt, got.ID.IsZero())
		assert.Equal(mt, "Ada", got.Name)
		assert.Equal(mt, fixedNow.Truncate(time.Millisecond), got.CreatedAt)
		assert.Equal(mt, got.CreatedAt, got.UpdatedAt)
		assert.True(mt, in.ID.IsZero(), "input must not be mutated")
	})

	mt.Run("distinct ids", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		repo := NewUserMongo(mt.DB)

		in := &model.User{Name: "Ada", Email: "ada@x.com", Password: "secret", Role: "user", Status: "pending"}
		first, err := repo.Create(ctx, in)
		require.NoError(mt, err)
		second, err := repo.Create(ctx, in)
		require.NoError(mt, err)

		assert.NotEqual(mt, first.ID, second.ID)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse())
		repo := NewUserMongo(mt.DB)

		got, err := repo.Create(ctx, &model.User{Name: "Ada", Email: "ada@x.com", Password: "secret", Role: "user", Status: "pending"})

		assert.Nil(mt, got)
		assert.Equal(mt, errs.KindConflict, errs.KindOf(err))
		assert.Contains(mt, err.Error(), "user already exists")
	})

	mt.Run("schema violation is not inserted", func(mt *mtest.T) {
		repo := NewUserMongo(mt.DB)

		got, err := repo.Create(ctx, &model.User{Name: "Ada", Role: "user", Status: "pending"})

		assert.Nil(mt, got)
		var e *errs.Error
		require.True(mt, errors.As(err, &e))
		assert.Equal(mt, errs.KindValidation, e.Kind)
		assert.Len(mt, e.Fields, 2)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on books to execute command",
		}))
		repo := NewUserMongo(mt.DB)

		got, err := repo.Create(ctx, &model.User{Name: "Ada", Email: "ada@x.com", Password: "secret", Role: "user", Status: "pending"})

		assert.Nil(mt, got)
		assert.Equal(mt, errs.KindInternal, errs.KindOf(err))
		assert.Contains(mt, err.Error(), "insert user")
	})
}

func TestBookMongo_Create(t *testing.T) {
	withFixedClock(t)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	publisher := primitive.NewObjectID()

	valid := func() *model.Book {
		return &model.Book{
			Title:       "Designing Data-Intensive Applications",
			Author:      "Kleppmann",
			Price:       float(45),
			Publication: "O'Reilly Media",
			Cover:       "ddia.png",
			PublisherID: &publisher,
		}
	}

	mt.Run("success applies default status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewBookMongo(mt.DB)

		got, err := repo.Create(ctx, valid())

		require.NoError(mt, err)
		assert.False(mt, got.ID.IsZero())
		assert.Equal(mt, model.StatusDraft, got.Status)
		assert.Equal(mt, publisher, *got.PublisherID)
	})

	mt.Run("rejects non-positive price", func(mt *mtest.T) {
		repo := NewBookMongo(mt.DB)
		b := valid()
		b.Price = float(0)

		got, err := repo.Create(ctx, b)

		assert.Nil(mt, got)
		var e *errs.Error
		require.True(mt, errors.As(err, &e))
		assert.Equal(mt, errs.KindValidation, e.Kind)
		assert.Equal(mt, []errs.FieldError{{Field: "price", Error: "must be a positive number"}}, e.Fields)
	})

	mt.Run("rejects short title", func(mt *mtest.T) {
		repo := NewBookMongo(mt.DB)
		b := valid()
		b.Title = "DDIA"

		got, err := repo.Create(ctx, b)

		assert.Nil(mt, got)
		var e *errs.Error
		require.True(mt, errors.As(err, &e))
		assert.Equal(mt, []errs.FieldError{{Field: "title", Error: "must be at least 5 characters"}}, e.Fields)
	})

	mt.Run("duplicate title", func(mt *mtest.T) {
		mt.AddMockResponses(duplicateKeyResponse())
		repo := NewBookMongo(mt.DB)

		_, err := repo.Create(ctx, valid())

		assert.Equal(mt, errs.KindConflict, errs.KindOf(err))
	})
}

func TestReviewMongo_Create(t *testing.T) {
	withFixedClock(t)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("success", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewReviewMongo(mt.DB)
		book := primitive.NewObjectID()

		got, err := repo.Create(ctx, &model.Review{Rating: float(4), Comment: "Dense but worth it", Book: &book})

		require.NoError(mt, err)
		assert.Equal(mt, model.StatusDraft, got.Status)
		assert.Equal(mt, 4.0, *got.Rating)
	})

	mt.Run("rejects unknown status", func(mt *mtest.T) {
		repo := NewReviewMongo(mt.DB)

		_, err := repo.Create(ctx, &model.Review{Rating: float(4), Comment: "ok", Status: "hidden"})

		assert.Equal(mt, errs.KindValidation, errs.KindOf(err))
	})
}

func TestTranslateError(t *testing.T) {
	assert.Equal(t, errs.KindUnavailable, errs.KindOf(translateError("user", context.DeadlineExceeded)))
	assert.Equal(t, errs.KindInternal, errs.KindOf(translateError("user", errors.New("boom"))))
}
