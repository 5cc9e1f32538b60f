// internal/domain/models/coursestatus.go
package models

// CourseStatus is the closed set of course lifecycle states. Storage keeps
// the raw string; ParseCourseStatus maps anything outside the known set to
// StatusUnknown so that "excluded from aggregates" is an explicit branch
// rather than a silent fallback.
type CourseStatus string

const (
	StatusPlanned   CourseStatus = "planned"
	StatusActive    CourseStatus = "active"
	StatusCompleted CourseStatus = "completed"
	StatusCancelled CourseStatus = "cancelled"
	StatusUnknown   CourseStatus = "unknown"
)

// KnownStatuses lists the recognized statuses in fixed display order.
// Charts assign colors by position, so this order must stay stable.
var KnownStatuses = []CourseStatus{
	StatusPlanned,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

// statusLabels maps each known status to its human-facing label.
var statusLabels = map[CourseStatus]string{
	StatusPlanned:   "Planned",
	StatusActive:    "Active",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
	StatusUnknown:   "Unknown",
}

// ParseCourseStatus classifies a raw stored status value. Matching is exact
// and case-sensitive; anything else, including the empty string, is
// StatusUnknown.
func ParseCourseStatus(raw string) CourseStatus {
	switch CourseStatus(raw) {
	case StatusPlanned, StatusActive, StatusCompleted, StatusCancelled:
		return CourseStatus(raw)
	}
	return StatusUnknown
}

// Label returns the display label for s.
func (s CourseStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return statusLabels[StatusUnknown]
}

// Known reports whether s is one of the four recognized statuses.
func (s CourseStatus) Known() bool {
	return s != StatusUnknown && statusLabels[s] != ""
}
