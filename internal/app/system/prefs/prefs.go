// Package prefs stores per-browser display preferences and one-shot flash
// messages in a signed cookie session.
package prefs

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	SessionName = "kurs56-prefs"

	upcomingLimitKey = "upcoming_limit"
	flashKey         = "flash"
)

// Store is initialised once via InitStore.
var Store *sessions.CookieStore

// InitStore initializes the global cookie store. An empty sessionKey gets a
// random key, which invalidates existing cookies on restart; fine for dev,
// logged as a warning so prod operators notice.
func InitStore(sessionKey string, secure bool, logger *zap.Logger) {
	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("no session key configured, using a random key; preference cookies will not survive restarts")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	Store = store

	logger.Info("preference store initialized", zap.Bool("secure", secure))
}

// UpcomingLimit returns the visitor's preferred number of upcoming courses,
// or fallback when unset or the store is not configured.
func UpcomingLimit(r *http.Request, fallback int) int {
	if Store == nil {
		return fallback
	}
	sess, _ := Store.Get(r, SessionName)
	if v, ok := sess.Values[upcomingLimitKey].(int); ok && v > 0 {
		return v
	}
	return fallback
}

// SetUpcomingLimit persists the preferred upcoming-course count. Values
// outside 1..50 are ignored.
func SetUpcomingLimit(w http.ResponseWriter, r *http.Request, limit int) error {
	if Store == nil || limit < 1 || limit > 50 {
		return nil
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values[upcomingLimitKey] = limit
	return sess.Save(r, w)
}

// AddFlash queues a one-shot message shown on the next rendered page.
func AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	if Store == nil || msg == "" {
		return nil
	}
	sess, _ := Store.Get(r, SessionName)
	sess.AddFlash(msg, flashKey)
	return sess.Save(r, w)
}

// PopFlashes returns and clears any queued messages.
func PopFlashes(w http.ResponseWriter, r *http.Request) []string {
	if Store == nil {
		return nil
	}
	sess, _ := Store.Get(r, SessionName)
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
