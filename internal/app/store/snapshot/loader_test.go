package snapshotstore_test

import (
	"testing"

	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	snapshotstore "github.com/mnogodumalon/kurs56/internal/app/store/snapshot"
	"github.com/mnogodumalon/kurs56/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }

func TestLoader_FetchesAllCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateInstructor(ctx, "Ada Lovelace", "ada@example.com")
	fixtures.CreateParticipant(ctx, "Max Weber", "max@example.com")
	fixtures.CreateRoom(ctx, "Room A", 24)
	course := fixtures.CreateCourse(ctx, "Algebra", "active", "2031-02-01")
	fixtures.CreateRegistration(ctx, course.ID, boolPtr(true))
	fixtures.CreateRegistration(ctx, course.ID, nil)

	loader := snapshotstore.NewLoader(db)

	snap, err := reporting.Load(ctx, loader)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Instructors) != 1 {
		t.Errorf("instructors = %d, want 1", len(snap.Instructors))
	}
	if len(snap.Participants) != 1 {
		t.Errorf("participants = %d, want 1", len(snap.Participants))
	}
	if len(snap.Rooms) != 1 {
		t.Errorf("rooms = %d, want 1", len(snap.Rooms))
	}
	if len(snap.Courses) != 1 {
		t.Errorf("courses = %d, want 1", len(snap.Courses))
	}
	if len(snap.Registrations) != 2 {
		t.Errorf("registrations = %d, want 2", len(snap.Registrations))
	}
}

func TestLoader_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	loader := snapshotstore.NewLoader(db)

	snap, err := reporting.Load(ctx, loader)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Courses) != 0 || len(snap.Registrations) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}
