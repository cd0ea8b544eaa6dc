package api

import "net/http"

type userTotalResponse struct {
	User  string `json:"user"`
	Total int64  `json:"total"`
}

type userDateCountResponse struct {
	User  string `json:"user"`
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TotalPerUser returns the duty count per user over the whole log.
func (h *Handler) TotalPerUser(w http.ResponseWriter, r *http.Request) {
	totals, err := h.stats.TotalPerUser(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]userTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, userTotalResponse{User: t.User, Total: t.Total})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// PerUserPerDate returns the duty count per (user, UTC date), date ascending.
func (h *Handler) PerUserPerDate(w http.ResponseWriter, r *http.Request) {
	counts, err := h.stats.PerUserPerDate(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]userDateCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, userDateCountResponse{User: c.User, Date: c.Date, Count: c.Count})
	}
	h.writeJSON(w, http.StatusOK, out)
}
