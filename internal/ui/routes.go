package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dutyboard/internal/ui/assets"
)

// MountRoutes attaches the UI handlers to the given router. The caller is
// expected to mount this under /ui.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/ui/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Get("/", h.Board)
	r.Post("/duties", h.DutyCreate)

	r.Get("/manage", h.Manage)
	r.Post("/users", h.UserCreate)
	r.Post("/users/{name}/delete", h.UserDelete)
	r.Post("/tasks", h.TaskCreate)
	r.Post("/tasks/{name}/delete", h.TaskDelete)
}
