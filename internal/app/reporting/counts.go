// internal/app/reporting/counts.go
package reporting

import (
	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// Counts holds the headline totals shown at the top of the dashboard.
type Counts struct {
	Instructors   int `json:"instructors"`
	Participants  int `json:"participants"`
	Rooms         int `json:"rooms"`
	Courses       int `json:"courses"`
	Registrations int `json:"registrations"`

	// ByStatus maps each recognized status to its course count. Courses
	// whose stored status parses to StatusUnknown appear in no bucket.
	ByStatus map[models.CourseStatus]int `json:"by_status"`
}

// CountByStatus returns the number of courses whose stored status parses to
// exactly the given status. Passing StatusUnknown counts the leftovers.
func CountByStatus(courses []models.Course, status models.CourseStatus) int {
	n := 0
	for _, c := range courses {
		if models.ParseCourseStatus(c.Status) == status {
			n++
		}
	}
	return n
}

// CollectCounts derives all totals from one snapshot. Pure; empty or
// never-loaded collections simply count as zero.
func CollectCounts(snap *Snapshot) Counts {
	counts := Counts{
		Instructors:   len(snap.Instructors),
		Participants:  len(snap.Participants),
		Rooms:         len(snap.Rooms),
		Courses:       len(snap.Courses),
		Registrations: len(snap.Registrations),
		ByStatus:      make(map[models.CourseStatus]int, len(models.KnownStatuses)),
	}
	for _, s := range models.KnownStatuses {
		counts.ByStatus[s] = CountByStatus(snap.Courses, s)
	}
	return counts
}
