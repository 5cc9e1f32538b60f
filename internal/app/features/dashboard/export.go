// internal/app/features/dashboard/export.go
package dashboard

import (
	"bytes"
	"net/http"

	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	"github.com/mnogodumalon/kurs56/internal/app/system/csvutil"
	"github.com/mnogodumalon/kurs56/internal/app/system/prefs"
)

// ServeExport handles GET /dashboard/export and downloads the current
// upcoming-course selection as CSV. The selection honors the visitor's
// preferred limit, so the download matches the rendered table.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	limit := prefs.UpcomingLimit(r, reporting.DefaultUpcomingLimit)
	view, ok := h.Model.ViewWithLimit(limit)
	if !ok {
		http.Error(w, "no dashboard data loaded yet", http.StatusServiceUnavailable)
		return
	}

	// Build the file in memory first so a failure can still render the
	// error page instead of truncating a partly written download.
	var buf bytes.Buffer
	if err := csvutil.WriteCoursesCSV(&buf, view.Upcoming); err != nil {
		h.ErrLog.LogServerError(w, r, "csv export failed", err,
			"Could not generate the course export. Please try again.", "/dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="upcoming-courses.csv"`)
	_, _ = w.Write(buf.Bytes())
}
