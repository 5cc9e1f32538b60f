// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"html/template"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/mnogodumalon/kurs56/internal/app/features/errors"
	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	"github.com/mnogodumalon/kurs56/internal/app/system/htmlsanitize"
	"github.com/mnogodumalon/kurs56/internal/app/system/prefs"
	"github.com/mnogodumalon/kurs56/internal/app/system/timeouts"
	"github.com/mnogodumalon/kurs56/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the reporting dashboard backed by a shared Model.
type Handler struct {
	Model  *reporting.Model
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(model *reporting.Model, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Model:  model,
		ErrLog: errLog,
		Log:    logger,
	}
}

// upcomingVM is one row in the upcoming-courses table.
type upcomingVM struct {
	Title       string
	StatusLabel string
	StatusClass string
	StartDate   string // empty when the course has no scheduled date
	Description template.HTML
}

type dashboardData struct {
	Title string

	State   string
	Loading bool
	Failed  bool
	HasView bool

	LoadError string
	Flashes   []string

	UpcomingLimit int

	Counts       reporting.Counts
	Distribution []reporting.StatusBucket
	Upcoming     []upcomingVM
	Payments     reporting.PaymentSummary
	AsOf         string
}

// ServeDashboard handles GET /dashboard.
//
// The page always renders something sensible for every model state: a
// loading notice before the first snapshot arrives, the retained view plus a
// warning after a failed reload, and the full aggregates once loaded.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	limit := prefs.UpcomingLimit(r, reporting.DefaultUpcomingLimit)
	state := h.Model.State()
	view, hasView := h.Model.ViewWithLimit(limit)

	data := dashboardData{
		Title:         "Dashboard",
		State:         state.String(),
		Loading:       state == reporting.StateLoading,
		Failed:        state == reporting.StateFailed,
		HasView:       hasView,
		Flashes:       prefs.PopFlashes(w, r),
		UpcomingLimit: limit,
	}

	if state == reporting.StateFailed {
		if err := h.Model.Err(); err != nil {
			h.Log.Warn("dashboard rendered in failed state", zap.Error(err))
		}
		data.LoadError = "The latest refresh failed. Figures below may be stale."
		if !hasView {
			data.LoadError = "Could not load dashboard data. Please try refreshing."
		}
	}

	if hasView {
		data.Counts = view.Counts
		data.Distribution = view.Distribution
		data.Payments = view.Payments
		data.AsOf = view.AsOf.Format("2006-01-02 15:04")
		data.Upcoming = make([]upcomingVM, 0, len(view.Upcoming))
		for _, c := range view.Upcoming {
			status := models.ParseCourseStatus(c.Status)
			vm := upcomingVM{
				Title:       c.Title,
				StatusLabel: status.Label(),
				StatusClass: string(status),
				Description: htmlsanitize.PrepareForDisplay(c.Description),
			}
			if _, ok := c.StartTime(); ok {
				vm.StartDate = c.StartDate
			}
			data.Upcoming = append(data.Upcoming, vm)
		}
	}

	templates.Render(w, r, "dashboard", data)
}

// ServeRefresh handles POST /dashboard/refresh. It runs a fresh load and
// redirects back to the dashboard; a failed load keeps the previous view.
func (h *Handler) ServeRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Model.Load(ctx); err != nil {
		_ = prefs.AddFlash(w, r, "Refresh failed. Showing the last loaded figures.")
	} else {
		_ = prefs.AddFlash(w, r, "Dashboard refreshed.")
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ServePrefs handles POST /dashboard/prefs and stores the visitor's
// preferred upcoming-course count.
func (h *Handler) ServePrefs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if raw := r.FormValue("upcoming_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			_ = prefs.AddFlash(w, r, "Upcoming course count must be a positive number.")
		} else if err := prefs.SetUpcomingLimit(w, r, limit); err != nil {
			h.Log.Warn("saving upcoming limit failed", zap.Error(err))
		}
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
