// Package ui serves the server-rendered duty board pages. It mirrors the
// consumer contract of the original single-page client: registry lists,
// aggregate views, a duty form, and a client-side date-range filter.
package ui

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"dutyboard/internal/domain"
	"dutyboard/internal/service"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Registry *service.RegistryService
	Duties   *service.DutyLogService
	Stats    *service.StatsService
}

func NewHandler(registry *service.RegistryService, duties *service.DutyLogService, stats *service.StatsService) *Handler {
	return &Handler{Registry: registry, Duties: duties, Stats: stats}
}

// boardData is everything the board page needs, fetched in one go.
type boardData struct {
	Users   []domain.User
	Tasks   []domain.Task
	Totals  []domain.UserTotal
	PerDate []domain.UserDateCount
}

// loadBoardData fetches the registry lists and both aggregate views in
// parallel.
func (h *Handler) loadBoardData(r *http.Request) (*boardData, error) {
	var data boardData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.Users, err = h.Registry.ListUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Tasks, err = h.Registry.ListTasks(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Totals, err = h.Stats.TotalPerUser(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.PerDate, err = h.Stats.PerUserPerDate(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
