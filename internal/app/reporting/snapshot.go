// internal/app/reporting/snapshot.go
package reporting

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// Snapshot is an immutable bundle of the five entity collections as of one
// successful load. A snapshot is replaced whole, never patched: every view
// derived from it is therefore internally consistent.
type Snapshot struct {
	Instructors   []models.Instructor
	Participants  []models.Participant
	Rooms         []models.Room
	Courses       []models.Course
	Registrations []models.Registration
}

// EntityLoader provides the five read operations a snapshot is built from.
// The engine is agnostic to where the data comes from; the Mongo-backed
// implementation lives in store/snapshot and tests use in-memory fakes.
type EntityLoader interface {
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Participants(ctx context.Context) ([]models.Participant, error)
	Rooms(ctx context.Context) ([]models.Room, error)
	Courses(ctx context.Context) ([]models.Course, error)
	Registrations(ctx context.Context) ([]models.Registration, error)
}

// Load fetches all five collections concurrently and waits for the whole set.
// If any fetch fails the first error is returned and no snapshot is produced;
// partial results are never observable. Each goroutine writes a distinct
// field, so the assembled snapshot needs no locking.
func Load(ctx context.Context, loader EntityLoader) (*Snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	var snap Snapshot
	g.Go(func() error {
		v, err := loader.Instructors(ctx)
		if err != nil {
			return err
		}
		snap.Instructors = v
		return nil
	})
	g.Go(func() error {
		v, err := loader.Participants(ctx)
		if err != nil {
			return err
		}
		snap.Participants = v
		return nil
	})
	g.Go(func() error {
		v, err := loader.Rooms(ctx)
		if err != nil {
			return err
		}
		snap.Rooms = v
		return nil
	})
	g.Go(func() error {
		v, err := loader.Courses(ctx)
		if err != nil {
			return err
		}
		snap.Courses = v
		return nil
	})
	g.Go(func() error {
		v, err := loader.Registrations(ctx)
		if err != nil {
			return err
		}
		snap.Registrations = v
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
