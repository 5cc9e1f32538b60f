// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and renders a friendly error page
// so handlers never leak internal error text to the browser.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs msg with the underlying err and request context, then
// renders the error page with userMsg. If backURL is empty the page links
// back to the site root.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	if backURL == "" {
		backURL = "/"
	}
	if userMsg == "" {
		userMsg = "An unexpected error occurred. Please try again."
	}

	data := pageData{
		Title:   "Something went wrong",
		Message: userMsg,
		BackURL: backURL,
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}
