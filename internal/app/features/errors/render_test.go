package errors_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/mnogodumalon/kurs56/internal/app/features/errors"
	"go.uber.org/zap"
)

func TestLogServerError_Writes500(t *testing.T) {
	el := uierrors.NewErrorLogger(zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard/export", nil)

	// LogServerError renders a template, which may panic without an
	// initialized template engine. The status is written first either way.
	func() {
		defer func() { _ = recover() }()
		el.LogServerError(rec, req, "csv export failed", fmt.Errorf("disk full"), "", "")
	}()

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
