// internal/app/store/rooms/roomstore.go
package roomstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateRoom = errors.New("a room with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("rooms")}
}

func (s *Store) Create(ctx context.Context, room models.Room) (models.Room, error) {
	room.ID = primitive.NewObjectID()
	room.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, room)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Room{}, ErrDuplicateRoom
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *Store) List(ctx context.Context) ([]models.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rooms []models.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
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
