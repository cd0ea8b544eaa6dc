package api

import "github.com/go-chi/chi/v5"

// MountRoutes attaches the API handlers to the given router. The caller is
// expected to mount this under /api.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/users", h.ListUsers)
	r.Post("/users", h.CreateUser)
	r.Delete("/users/{name}", h.DeleteUser)

	r.Get("/tasks", h.ListTasks)
	r.Post("/tasks", h.CreateTask)
	r.Delete("/tasks/{name}", h.DeleteTask)

	r.Post("/add-duty", h.AddDuty)
	r.Get("/get-duties", h.GetDuties)

	r.Get("/stats/total-per-user", h.TotalPerUser)
	r.Get("/stats/per-user-per-date", h.PerUserPerDate)
}
