// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll is called at startup. Each ensure* function is idempotent.
// Errors are aggregated so every problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureCourses(ctx, db); err != nil {
		problems = append(problems, "courses: "+err.Error())
	}
	if err := ensureRegistrations(ctx, db); err != nil {
		problems = append(problems, "registrations: "+err.Error())
	}
	if err := ensureRooms(ctx, db); err != nil {
		problems = append(problems, "rooms: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name. Treated as "already there".
func isOptionsConflictErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, idxModels []mongo.IndexModel) error {
	for _, m := range idxModels {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if isOptionsConflictErr(err) {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			return err
		}
		zap.L().Info("ensured index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}
	return nil
}

func ensureCourses(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("courses"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_1"),
		},
		{
			Keys:    bson.D{{Key: "start_date", Value: 1}},
			Options: options.Index().SetName("start_date_1"),
		},
	})
}

func ensureRegistrations(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("registrations"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "course_id", Value: 1}},
			Options: options.Index().SetName("course_id_1"),
		},
	})
}

func ensureRooms(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("rooms"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_1").SetUnique(true),
		},
	})
}
