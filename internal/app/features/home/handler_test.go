package home_test

import (
	"net/http/httptest"
	"testing"

	"github.com/mnogodumalon/kurs56/internal/app/features/home"
	"github.com/mnogodumalon/kurs56/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *home.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return home.NewHandler(db, zap.NewNop())
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeRoot(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without
	// an initialized template engine.
	func() {
		defer func() {
			_ = recover()
		}()
		handler.ServeRoot(rec, req)
	}()
}
