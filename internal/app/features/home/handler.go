package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	coursestore "github.com/mnogodumalon/kurs56/internal/app/store/courses"
	"github.com/mnogodumalon/kurs56/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

type homeData struct {
	Title       string
	CourseCount int64
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := homeData{Title: "Welcome"}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		n, err := coursestore.New(h.DB).Count(ctx)
		if err != nil {
			h.Log.Warn("home: course count failed", zap.Error(err))
		} else {
			data.CourseCount = n
		}
	}

	templates.Render(w, r, "home", data)
}
