// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is one offered course. StartDate is stored as a plain ISO calendar
// date ("2006-01-02", no time component) because course scheduling is done in
// whole days; a blank StartDate means the course has not been scheduled yet.
type Course struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string             `bson:"title,omitempty" json:"title,omitempty"`

	// Status holds one of the CourseStatus values, or anything else for
	// records imported from external sources. Use ParseCourseStatus to
	// classify; unrecognized values are excluded from status aggregates.
	Status string `bson:"status,omitempty" json:"status,omitempty"`

	StartDate   string   `bson:"start_date,omitempty" json:"start_date,omitempty"`
	Price       *float64 `bson:"price,omitempty" json:"price,omitempty"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`

	InstructorID *primitive.ObjectID `bson:"instructor_id,omitempty" json:"instructor_id,omitempty"`
	RoomID       *primitive.ObjectID `bson:"room_id,omitempty" json:"room_id,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// StartDateLayout is the storage layout for Course.StartDate.
const StartDateLayout = "2006-01-02"

// StartTime parses StartDate. ok is false when the date is absent or not a
// valid calendar date; callers must then treat the course as undated.
func (c Course) StartTime() (t time.Time, ok bool) {
	if c.StartDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(StartDateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
