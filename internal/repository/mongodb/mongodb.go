// Package mongodb implements the repository interfaces on MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"bookapi/internal/errs"
	"bookapi/internal/validation"
)

var timeNow = time.Now

// now returns the current time at the precision MongoDB stores.
func now() time.Time {
	return timeNow().UTC().Truncate(time.Millisecond)
}

// insertOne enforces the document schema, then inserts doc into coll.
func insertOne(ctx context.Context, coll *mongo.Collection, entity string, doc any) error {
	if err := validation.Check(doc); err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return translateError(entity, err)
	}
	return nil
}

// translateError maps driver failures onto error kinds. Anything not
// recognized is wrapped and surfaces as an internal error.
func translateError(entity string, err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return errs.Conflict(fmt.Sprintf("%s already exists", entity), err)
	case mongo.IsTimeout(err), mongo.IsNetworkError(err), errors.Is(err, context.DeadlineExceeded):
		return errs.Unavailable("document store unavailable", err)
	default:
		return fmt.Errorf("insert %s: %w", entity, err)
	}
}
