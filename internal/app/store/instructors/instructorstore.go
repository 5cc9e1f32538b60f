// internal/app/store/instructors/instructorstore.go
package instructorstore

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
	return &Store{c: db.Collection("instructors")}
}

func (s *Store) Create(ctx context.Context, ins models.Instructor) (models.Instructor, error) {
	ins.ID = primitive.NewObjectID()
	ins.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, ins)
	if err != nil {
		return models.Instructor{}, err
	}
	return ins, nil
}

func (s *Store) List(ctx context.Context) ([]models.Instructor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Instructor
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
