// internal/app/reporting/distribution.go
package reporting

import (
	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// StatusBucket is one (label, count) pair of the status chart.
type StatusBucket struct {
	Status models.CourseStatus `json:"status"`
	Label  string              `json:"label"`
	Count  int                 `json:"count"`
}

// StatusDistribution computes the course-status chart data: one bucket per
// recognized status in fixed display order, with zero-count buckets dropped.
// The order is never re-sorted by count; chart colors are assigned by
// position and must stay stable between loads. When no course has a
// recognized status the result is empty and the caller renders a "no data"
// state instead of an empty chart.
func StatusDistribution(courses []models.Course) []StatusBucket {
	var buckets []StatusBucket
	for _, s := range models.KnownStatuses {
		n := CountByStatus(courses, s)
		if n == 0 {
			continue
		}
		buckets = append(buckets, StatusBucket{Status: s, Label: s.Label(), Count: n})
	}
	return buckets
}
