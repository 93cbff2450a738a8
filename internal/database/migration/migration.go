package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookapi/internal/database"
)

type indexStep struct {
	Name       string
	Collection string
	Model      mongo.IndexModel
}

var steps = []indexStep{
	{
		Name:       "create_index_users_email_unique",
		Collection: database.UsersCollection,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1").SetUnique(true),
		},
	},
	{
		Name:       "create_index_books_title_unique",
		Collection: database.BooksCollection,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title_1").SetUnique(true),
		},
	},
}

// EnsureIndexes creates the unique indexes the schemas rely on. Creating an
// index that already exists with the same definition is a no-op, so this is
// safe to run on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_name", db.Name()).Logger()

	log.Info().Str("event", "db_index_start").Str("status", "in_progress").Msg("ensuring indexes")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.Collection(step.Collection).Indexes().CreateOne(ctx, step.Model); err != nil {
			log.Error().
				Err(err).
				Str("event", "db_index_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("index creation failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info().
			Str("event", "db_index_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("index ensured")
	}

	log.Info().
		Str("event", "db_index_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("indexes ready")

	return nil
}
