// internal/domain/models/instructor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor teaches courses. The reporting engine only needs the headcount;
// the rest is for administration screens.
type Instructor struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"full_name"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
