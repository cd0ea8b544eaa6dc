// Package api implements the JSON HTTP surface under /api.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dutyboard/internal/service"
)

// Handler serves the duty board API. All responses are JSON; failures carry
// an {error: message} body with the status from httpStatusFromDomainError.
type Handler struct {
	registry *service.RegistryService
	duties   *service.DutyLogService
	stats    *service.StatsService
	logger   *slog.Logger
}

func NewHandler(registry *service.RegistryService, duties *service.DutyLogService, stats *service.StatsService, logger *slog.Logger) *Handler {
	return &Handler{registry: registry, duties: duties, stats: stats, logger: logger}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatusFromDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
