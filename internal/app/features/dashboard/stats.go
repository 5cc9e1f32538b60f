// internal/app/features/dashboard/stats.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/mnogodumalon/kurs56/internal/app/reporting"
)

// statsResponse is the JSON shape of GET /dashboard/stats.
type statsResponse struct {
	State string          `json:"state"`
	View  *reporting.View `json:"view,omitempty"`
	Error string          `json:"error,omitempty"`
}

// ServeStats handles GET /dashboard/stats and returns the current derived
// view as JSON for widgets and monitoring.
//
// The response always carries the lifecycle state; the view is present once
// any load has succeeded, even if the most recent one failed.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	resp := statsResponse{State: h.Model.State().String()}

	if view, ok := h.Model.View(); ok {
		resp.View = &view
	}
	if err := h.Model.Err(); err != nil {
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.View == nil && resp.Error != "" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
