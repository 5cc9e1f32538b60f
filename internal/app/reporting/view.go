// internal/app/reporting/view.go
package reporting

import (
	"time"

	"github.com/mnogodumalon/kurs56/internal/domain/models"
)

// View is the complete derived view model the dashboard renders. It is a
// value computed from one snapshot, not a window onto live storage, so a
// view stays coherent even while a newer load is in flight.
type View struct {
	Counts       Counts          `json:"counts"`
	Distribution []StatusBucket  `json:"distribution"`
	Upcoming     []models.Course `json:"upcoming"`
	Payments     PaymentSummary  `json:"payments"`

	// AsOf is the reference date the upcoming list was computed against,
	// which is also when the underlying snapshot was loaded.
	AsOf time.Time `json:"as_of"`
}

// BuildView runs all four aggregations over one snapshot. Pure: calling it
// twice with the same inputs yields identical views.
func BuildView(snap *Snapshot, asOf time.Time, upcomingLimit int) View {
	return View{
		Counts:       CollectCounts(snap),
		Distribution: StatusDistribution(snap.Courses),
		Upcoming:     SelectUpcoming(snap.Courses, asOf, upcomingLimit),
		Payments:     SummarizePayments(snap.Registrations),
		AsOf:         asOf,
	}
}
