package indexes_test

import (
	"testing"

	"github.com/mnogodumalon/kurs56/internal/app/system/indexes"
	"github.com/mnogodumalon/kurs56/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCourseIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("courses").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("Decode index failed: %v", err)
		}
		if name, ok := idx["name"].(string); ok {
			names[name] = true
		}
	}

	for _, want := range []string{"status_1", "start_date_1"} {
		if !names[want] {
			t.Errorf("courses missing index %q, have %v", want, names)
		}
	}
}

func TestEnsureAll_RoomNameUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	cur, err := db.Collection("rooms").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	found := false
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("Decode index failed: %v", err)
		}
		if name, _ := idx["name"].(string); name == "name_1" {
			found = true
			if unique, _ := idx["unique"].(bool); !unique {
				t.Error("rooms name_1 index is not unique")
			}
		}
	}
	if !found {
		t.Error("rooms missing name_1 index")
	}
}
