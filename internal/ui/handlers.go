package ui

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dutyboard/internal/domain"
)

// Board shows the duty form, totals chart, and the per-date activity grid.
// The range filter defaults to the last seven days through today, inclusive.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	d, err := h.loadBoardData(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	today := time.Now().UTC()
	endDate := today.Format(dateLayout)
	startDate := today.AddDate(0, 0, -6).Format(dateLayout)
	nowLocal := time.Now().Format("2006-01-02T15:04")

	renderHTML(w, http.StatusOK, boardPage(d, buildDutyGrid(d.PerDate), nowLocal, startDate, endDate))
}

// DutyCreate handles the duty form submission and redirects back to the
// board, which refetches everything. Failures render a blocking error page;
// nothing is updated optimistically.
func (h *Handler) DutyCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}

	// datetime-local inputs carry no zone; interpret them in server-local
	// time and normalize from there.
	raw := formString(r.Form, "timestamp")
	timestamp := raw
	if t, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local); err == nil {
		timestamp = t.Format(time.RFC3339)
	}

	_, err := h.Duties.Add(r.Context(), domain.CreateDutyRequest{
		User:      formString(r.Form, "user"),
		Task:      formString(r.Form, "task"),
		Timestamp: timestamp,
	})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/ui", http.StatusSeeOther)
}

// Manage shows the registry management panel.
func (h *Handler) Manage(w http.ResponseWriter, r *http.Request) {
	d, err := h.loadBoardData(r)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, managePage(d))
}

func (h *Handler) UserCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	_, err := h.Registry.AddUser(r.Context(), domain.CreateUserRequest{Name: formString(r.Form, "name")})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/ui/manage", http.StatusSeeOther)
}

func (h *Handler) UserDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.DeleteUser(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/ui/manage", http.StatusSeeOther)
}

func (h *Handler) TaskCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	_, err := h.Registry.AddTask(r.Context(), domain.CreateTaskRequest{Name: formString(r.Form, "name")})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/ui/manage", http.StatusSeeOther)
}

func (h *Handler) TaskDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.DeleteTask(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/ui/manage", http.StatusSeeOther)
}

// renderServiceError surfaces the failure message verbatim on a blocking
// error page; prior state stays untouched.
func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else if errors.As(err, &conflict) {
		status = http.StatusBadRequest
		title = "Cannot Complete"
		message = conflict.Error()
	}

	renderHTML(w, status, errorPage(title, message))
}
