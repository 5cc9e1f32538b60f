// internal/domain/models/room.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room is a physical room courses can be scheduled into. Name is unique.
type Room struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Capacity int                `bson:"capacity,omitempty" json:"capacity,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
