package api

import (
	"net/http"
	"time"

	"dutyboard/internal/domain"
)

type addDutyRequest struct {
	User      string `json:"user"`
	Task      string `json:"task"`
	Timestamp string `json:"timestamp"`
}

type dutyResponse struct {
	User      string    `json:"user"`
	Task      string    `json:"task"`
	Timestamp time.Time `json:"timestamp"`
}

// AddDuty appends one validated duty event to the log.
func (h *Handler) AddDuty(w http.ResponseWriter, r *http.Request) {
	var req addDutyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, domain.ErrValidation("invalid request body: %v", err))
		return
	}
	_, err := h.duties.Add(r.Context(), domain.CreateDutyRequest{
		User:      req.User,
		Task:      req.Task,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"message": "Duty logged successfully"})
}

// GetDuties returns the full duty log, newest first.
func (h *Handler) GetDuties(w http.ResponseWriter, r *http.Request) {
	duties, err := h.duties.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]dutyResponse, 0, len(duties))
	for _, d := range duties {
		out = append(out, dutyResponse{User: d.User, Task: d.Task, Timestamp: d.Timestamp})
	}
	h.writeJSON(w, http.StatusOK, out)
}
