// internal/app/store/snapshot/loader.go
package snapshotstore

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	coursestore "github.com/mnogodumalon/kurs56/internal/app/store/courses"
	instructorstore "github.com/mnogodumalon/kurs56/internal/app/store/instructors"
	participantstore "github.com/mnogodumalon/kurs56/internal/app/store/participants"
	registrationstore "github.com/mnogodumalon/kurs56/internal/app/store/registrations"
	roomstore "github.com/mnogodumalon/kurs56/internal/app/store/rooms"
	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// Loader bundles the five entity stores into a reporting.EntityLoader.
// All five reads run against the same database, so a snapshot assembled from
// one Loader is as consistent as a single Mongo read can be.
type Loader struct {
	courses       *coursestore.Store
	registrations *registrationstore.Store
	instructors   *instructorstore.Store
	participants  *participantstore.Store
	rooms         *roomstore.Store
}

func NewLoader(db *mongo.Database) *Loader {
	return &Loader{
		courses:       coursestore.New(db),
		registrations: registrationstore.New(db),
		instructors:   instructorstore.New(db),
		participants:  participantstore.New(db),
		rooms:         roomstore.New(db),
	}
}

func (l *Loader) Instructors(ctx context.Context) ([]models.Instructor, error) {
	return l.instructors.List(ctx)
}

func (l *Loader) Participants(ctx context.Context) ([]models.Participant, error) {
	return l.participants.List(ctx)
}

func (l *Loader) Rooms(ctx context.Context) ([]models.Room, error) {
	return l.rooms.List(ctx)
}

func (l *Loader) Courses(ctx context.Context) ([]models.Course, error) {
	return l.courses.List(ctx)
}

func (l *Loader) Registrations(ctx context.Context) ([]models.Registration, error) {
	return l.registrations.List(ctx)
}
