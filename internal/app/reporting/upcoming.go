// internal/app/reporting/upcoming.go
package reporting

import (
	"sort"
	"time"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// DefaultUpcomingLimit bounds the upcoming list when no limit is configured.
const DefaultUpcomingLimit = 5

// sortKey normalizes a course's start date for filtering and ordering.
// ISO calendar dates compare correctly as strings; a missing or unparseable
// date becomes the empty string, which sorts before every real date.
func sortKey(c models.Course) string {
	if _, ok := c.StartTime(); !ok {
		return ""
	}
	return c.StartDate
}

// includeUpcoming is the inclusion predicate: a course belongs on the
// upcoming list iff it starts strictly after asOf, or it is still in the
// planned state regardless of whether a date has been set. Undated courses
// in any other state are excluded. A record with a malformed date is treated
// as undated rather than aborting the computation.
func includeUpcoming(c models.Course, asOf string) bool {
	if key := sortKey(c); key != "" && key > asOf {
		return true
	}
	return models.ParseCourseStatus(c.Status) == models.StatusPlanned
}

// SelectUpcoming filters and ranks courses into the bounded upcoming list.
// Ordering is ascending by start date with undated courses first; ties keep
// their original relative order. A limit < 1 falls back to
// DefaultUpcomingLimit.
func SelectUpcoming(courses []models.Course, asOf time.Time, limit int) []models.Course {
	if limit < 1 {
		limit = DefaultUpcomingLimit
	}
	asOfKey := asOf.Format(models.StartDateLayout)

	var out []models.Course
	for _, c := range courses {
		if includeUpcoming(c, asOfKey) {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
