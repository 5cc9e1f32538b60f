// internal/domain/models/registration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration links a participant to a course. Paid is deliberately a
// *bool: older records never had the field, and for payment aggregation a
// missing flag means exactly the same as false.
type Registration struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CourseID      *primitive.ObjectID `bson:"course_id,omitempty" json:"course_id,omitempty"`
	ParticipantID *primitive.ObjectID `bson:"participant_id,omitempty" json:"participant_id,omitempty"`

	Paid *bool `bson:"paid,omitempty" json:"paid,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsPaid reports whether the registration has been paid. Only an explicit
// true counts; nil and false are both unpaid.
func (r Registration) IsPaid() bool {
	return r.Paid != nil && *r.Paid
}
