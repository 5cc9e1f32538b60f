// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// Create inserts a new course, stamping timestamps. Status and StartDate are
// stored as given; classification happens at aggregation time.
func (s *Store) Create(ctx context.Context, course models.Course) (models.Course, error) {
	now := time.Now().UTC()
	course.ID = primitive.NewObjectID()
	course.CreatedAt = now

	_, err := s.c.InsertOne(ctx, course)
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var course models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// List returns all courses ordered by start date (undated first, matching
// the dashboard's upcoming ordering) then by creation time.
func (s *Store) List(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// Update modifies a course's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, course models.Course) error {
	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	if course.Title != "" {
		set["title"] = course.Title
	}
	if course.Status != "" {
		set["status"] = course.Status
	}
	if course.StartDate != "" {
		set["start_date"] = course.StartDate
	}
	if course.Price != nil {
		set["price"] = *course.Price
	}
	if course.Description != "" {
		set["description"] = course.Description
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a course by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
