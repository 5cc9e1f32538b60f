// internal/app/store/registrations/registrationstore.go
package registrationstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("registrations")}
}

func (s *Store) Create(ctx context.Context, reg models.Registration) (models.Registration, error) {
	reg.ID = primitive.NewObjectID()
	reg.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, reg)
	if err != nil {
		return models.Registration{}, err
	}
	return reg, nil
}

func (s *Store) List(ctx context.Context) ([]models.Registration, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var regs []models.Registration
	if err := cur.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// ListByCourse returns the registrations for one course.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Registration, error) {
	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var regs []models.Registration
	if err := cur.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// SetPaid flips the paid flag on one registration.
func (s *Store) SetPaid(ctx context.Context, id primitive.ObjectID, paid bool) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"paid": paid}})
	return err
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
