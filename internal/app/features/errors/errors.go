// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title   string
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:   "Page not found",
		Message: "The page you are looking for does not exist.",
		BackURL: "/",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}

// ServerError renders a friendly "something went wrong" page.
func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:   "Something went wrong",
		Message: "An unexpected error occurred. Please try again.",
		BackURL: "/",
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}
