package reporting

import (
	"testing"
	"time"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(models.StartDateLayout, value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return ts
}

func TestSelectUpcoming_PredicateAndOrder(t *testing.T) {
	asOf := mustDate(t, "2024-06-01")
	courses := []models.Course{
		{Title: "Past active", StartDate: "2024-05-01", Status: "active"},
		{Title: "Future active", StartDate: "2024-07-01", Status: "active"},
		{Title: "Undated planned", Status: "planned"},
	}

	got := SelectUpcoming(courses, asOf, 5)

	if len(got) != 2 {
		t.Fatalf("got %d courses, want 2: %+v", len(got), got)
	}
	// undated planned course sorts before any dated course
	if got[0].Title != "Undated planned" {
		t.Errorf("first = %q, want %q", got[0].Title, "Undated planned")
	}
	if got[1].Title != "Future active" {
		t.Errorf("second = %q, want %q", got[1].Title, "Future active")
	}
}

func TestSelectUpcoming_ExclusionRules(t *testing.T) {
	asOf := mustDate(t, "2024-06-01")
	tests := []struct {
		name   string
		course models.Course
		want   bool
	}{
		{"dated in future, any status", models.Course{StartDate: "2024-06-02", Status: "completed"}, true},
		{"starts exactly on asOf", models.Course{StartDate: "2024-06-01", Status: "active"}, false},
		{"dated in past, planned", models.Course{StartDate: "2024-01-01", Status: "planned"}, true},
		{"undated, planned", models.Course{Status: "planned"}, true},
		{"undated, active", models.Course{Status: "active"}, false},
		{"undated, no status", models.Course{}, false},
		{"malformed date, planned", models.Course{StartDate: "soon", Status: "planned"}, true},
		{"malformed date, completed", models.Course{StartDate: "soon", Status: "completed"}, false},
	}
	for _, tt := range tests {
		got := SelectUpcoming([]models.Course{tt.course}, asOf, 5)
		if included := len(got) == 1; included != tt.want {
			t.Errorf("%s: included = %v, want %v", tt.name, included, tt.want)
		}
	}
}

func TestSelectUpcoming_Limit(t *testing.T) {
	asOf := mustDate(t, "2024-01-01")
	var courses []models.Course
	for _, d := range []string{"2024-03-01", "2024-02-01", "2024-05-01", "2024-04-01", "2024-06-01", "2024-07-01"} {
		courses = append(courses, models.Course{StartDate: d, Status: "active"})
	}

	got := SelectUpcoming(courses, asOf, 3)
	if len(got) != 3 {
		t.Fatalf("got %d courses, want 3", len(got))
	}
	// truncation happens after sorting: keep the three soonest
	want := []string{"2024-02-01", "2024-03-01", "2024-04-01"}
	for i, c := range got {
		if c.StartDate != want[i] {
			t.Errorf("got[%d].StartDate = %q, want %q", i, c.StartDate, want[i])
		}
	}
}

func TestSelectUpcoming_DefaultLimit(t *testing.T) {
	asOf := mustDate(t, "2024-01-01")
	var courses []models.Course
	for i := 0; i < 10; i++ {
		courses = append(courses, models.Course{Status: "planned"})
	}
	if got := SelectUpcoming(courses, asOf, 0); len(got) != DefaultUpcomingLimit {
		t.Errorf("limit 0: got %d courses, want %d", len(got), DefaultUpcomingLimit)
	}
}

func TestSelectUpcoming_StableTies(t *testing.T) {
	asOf := mustDate(t, "2024-01-01")
	courses := []models.Course{
		{Title: "A", StartDate: "2024-02-01", Status: "active"},
		{Title: "B", StartDate: "2024-02-01", Status: "active"},
		{Title: "C", StartDate: "2024-02-01", Status: "active"},
	}
	got := SelectUpcoming(courses, asOf, 5)
	if len(got) != 3 {
		t.Fatalf("got %d courses, want 3", len(got))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Title != want {
			t.Errorf("tie order broken: got[%d] = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestSelectUpcoming_Empty(t *testing.T) {
	if got := SelectUpcoming(nil, mustDate(t, "2024-06-01"), 5); len(got) != 0 {
		t.Errorf("SelectUpcoming(nil) = %+v, want empty", got)
	}
}

func TestSelectUpcoming_OutputSorted(t *testing.T) {
	asOf := mustDate(t, "2024-01-01")
	courses := []models.Course{
		{StartDate: "2024-05-01", Status: "active"},
		{Status: "planned"},
		{StartDate: "2024-02-01", Status: "active"},
		{Status: "planned"},
		{StartDate: "2024-03-01", Status: "planned"},
	}
	got := SelectUpcoming(courses, asOf, 10)
	for i := 1; i < len(got); i++ {
		if sortKey(got[i-1]) > sortKey(got[i]) {
			t.Errorf("output not sorted at %d: %q > %q", i, sortKey(got[i-1]), sortKey(got[i]))
		}
	}
	// undated entries come first
	if len(got) != 5 || got[0].StartDate != "" || got[1].StartDate != "" {
		t.Errorf("undated courses should sort first, got %+v", got)
	}
}
