// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// CreateCourse inserts a test course. status and startDate may be empty.
func (f *Fixtures) CreateCourse(ctx context.Context, title, status, startDate string) models.Course {
	f.t.Helper()

	course := models.Course{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Status:    status,
		StartDate: startDate,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("courses").InsertOne(ctx, course); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return course
}

// CreateRegistration inserts a test registration. paid may be nil to mimic
// records that predate the paid flag.
func (f *Fixtures) CreateRegistration(ctx context.Context, courseID primitive.ObjectID, paid *bool) models.Registration {
	f.t.Helper()

	reg := models.Registration{
		ID:        primitive.NewObjectID(),
		CourseID:  &courseID,
		Paid:      paid,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("registrations").InsertOne(ctx, reg); err != nil {
		f.t.Fatalf("failed to create test registration: %v", err)
	}
	return reg
}

// CreateInstructor inserts a test instructor.
func (f *Fixtures) CreateInstructor(ctx context.Context, fullName, email string) models.Instructor {
	f.t.Helper()

	ins := models.Instructor{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("instructors").InsertOne(ctx, ins); err != nil {
		f.t.Fatalf("failed to create test instructor: %v", err)
	}
	return ins
}

// CreateParticipant inserts a test participant.
func (f *Fixtures) CreateParticipant(ctx context.Context, fullName, email string) models.Participant {
	f.t.Helper()

	p := models.Participant{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("participants").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test participant: %v", err)
	}
	return p
}

// CreateRoom inserts a test room.
func (f *Fixtures) CreateRoom(ctx context.Context, name string, capacity int) models.Room {
	f.t.Helper()

	room := models.Room{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Capacity:  capacity,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("rooms").InsertOne(ctx, room); err != nil {
		f.t.Fatalf("failed to create test room: %v", err)
	}
	return room
}
