// internal/domain/models/participant.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant is a person who can register for courses.
type Participant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"full_name"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
