package prefs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func initTestStore(t *testing.T) {
	t.Helper()
	InitStore("test-session-key-0123456789abcdef", false, zap.NewNop())
	t.Cleanup(func() { Store = nil })
}

// carry copies cookies set by w onto a fresh request, simulating the
// browser's next visit.
func carry(t *testing.T, w *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestUpcomingLimit_Default(t *testing.T) {
	initTestStore(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if got := UpcomingLimit(req, 5); got != 5 {
		t.Errorf("got %d, want fallback 5", got)
	}
}

func TestUpcomingLimit_RoundTrip(t *testing.T) {
	initTestStore(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/prefs", nil)
	if err := SetUpcomingLimit(w, req, 10); err != nil {
		t.Fatalf("SetUpcomingLimit: %v", err)
	}

	next := carry(t, w, "/dashboard")
	if got := UpcomingLimit(next, 5); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
}

func TestSetUpcomingLimit_RejectsOutOfRange(t *testing.T) {
	initTestStore(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/prefs", nil)
	if err := SetUpcomingLimit(w, req, 0); err != nil {
		t.Fatalf("SetUpcomingLimit: %v", err)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("out-of-range limit should not set a cookie")
	}
}

func TestFlash_PopClears(t *testing.T) {
	initTestStore(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dashboard/refresh", nil)
	if err := AddFlash(w, req, "Dashboard refreshed"); err != nil {
		t.Fatalf("AddFlash: %v", err)
	}

	next := carry(t, w, "/dashboard")
	w2 := httptest.NewRecorder()
	got := PopFlashes(w2, next)
	if len(got) != 1 || got[0] != "Dashboard refreshed" {
		t.Fatalf("got %v, want one flash", got)
	}

	third := carry(t, w2, "/dashboard")
	if again := PopFlashes(httptest.NewRecorder(), third); len(again) != 0 {
		t.Errorf("flash not cleared, got %v", again)
	}
}

func TestNilStore_SafeNoops(t *testing.T) {
	Store = nil

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if got := UpcomingLimit(req, 5); got != 5 {
		t.Errorf("got %d, want fallback 5", got)
	}
	if err := AddFlash(httptest.NewRecorder(), req, "x"); err != nil {
		t.Errorf("AddFlash with nil store: %v", err)
	}
	if got := PopFlashes(httptest.NewRecorder(), req); got != nil {
		t.Errorf("PopFlashes with nil store: %v", got)
	}
}
