package ui

import (
	"fmt"
	"strconv"

	"dutyboard/internal/domain"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"
)

// boardPage renders the duty form, the totals chart, and the per-date grid.
// startDate/endDate seed the client-side range filter; nowLocal seeds the
// timestamp input.
func boardPage(d *boardData, grid dutyGrid, nowLocal, startDate, endDate string) gomponents.Node {
	return appPage(
		"Board",
		"board",
		dutyFormCard(d, nowLocal),
		totalsCard(d.Totals),
		activityCard(grid, startDate, endDate),
	)
}

func dutyFormCard(d *boardData, nowLocal string) gomponents.Node {
	userOptions := make([]gomponents.Node, 0, len(d.Users))
	for _, u := range d.Users {
		userOptions = append(userOptions, html.Option(html.Value(u.Name), gomponents.Text(u.Name)))
	}
	taskOptions := make([]gomponents.Node, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		taskOptions = append(taskOptions, html.Option(html.Value(t.Name), gomponents.Text(t.Name)))
	}

	if len(d.Users) == 0 || len(d.Tasks) == 0 {
		return html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Log a duty")),
			html.P(html.Class("text-muted"), gomponents.Text("Register at least one user and one task before logging duties.")),
			html.P(html.A(html.Href("/ui/manage"), gomponents.Text("Open management ->"))),
		)
	}

	// The browser preselects the first option of each select, matching the
	// registry's alphabetical order.
	return html.Div(
		html.Class("card"),
		html.H2(gomponents.Text("Log a duty")),
		html.Form(
			html.Method("post"),
			html.Action("/ui/duties"),
			html.Label(gomponents.Text("User")),
			html.Select(html.Name("user"), gomponents.Group(userOptions)),
			html.Label(gomponents.Text("Task")),
			html.Select(html.Name("task"), gomponents.Group(taskOptions)),
			html.Label(gomponents.Text("When")),
			html.Input(html.Type("datetime-local"), html.Name("timestamp"), html.Value(nowLocal), html.Required()),
			html.Div(html.StyleAttr("margin-top: 12px"),
				html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text("Log duty")),
			),
		),
	)
}

func totalsCard(totals []domain.UserTotal) gomponents.Node {
	if len(totals) == 0 {
		return html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Totals per user")),
			html.P(html.Class("text-muted"), gomponents.Text("No duties logged yet.")),
		)
	}

	var max int64
	for _, t := range totals {
		if t.Total > max {
			max = t.Total
		}
	}

	bars := make([]gomponents.Node, 0, len(totals))
	for _, t := range totals {
		pct := 0
		if max > 0 {
			pct = int(t.Total * 100 / max)
		}
		bars = append(bars, html.Div(
			html.Class("bar-row"),
			html.Div(html.Class("bar-label"), gomponents.Text(t.User)),
			html.Div(html.Class("bar-track"),
				html.Div(html.Class("bar-fill"), html.StyleAttr(fmt.Sprintf("width: %d%%", pct))),
			),
			html.Div(html.Class("bar-count"), gomponents.Text(strconv.FormatInt(t.Total, 10))),
		))
	}

	return html.Div(
		html.Class("card"),
		html.H2(gomponents.Text("Totals per user")),
		gomponents.Group(bars),
	)
}

// activityCard renders the dense per-date grid. The date range inputs are
// datastar signals; filtering happens entirely in the browser by comparing
// UTC date strings, so changing the range never refetches.
func activityCard(grid dutyGrid, startDate, endDate string) gomponents.Node {
	if len(grid.Rows) == 0 {
		return html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Daily activity")),
			html.P(html.Class("text-muted"), gomponents.Text("No duties logged yet.")),
		)
	}

	header := []gomponents.Node{html.Th(gomponents.Text("Date"))}
	for _, u := range grid.Users {
		header = append(header, html.Th(gomponents.Text(u)))
	}

	rows := make([]gomponents.Node, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		cells := []gomponents.Node{
			data.Show(inRangeExpr(row.Date)),
			html.Td(gomponents.Text(row.Date)),
		}
		for _, c := range row.Counts {
			cells = append(cells, html.Td(gomponents.Text(strconv.FormatInt(c, 10))))
		}
		rows = append(rows, html.Tr(cells...))
	}

	return html.Div(
		html.Class("card"),
		data.Signals(map[string]any{"start": startDate, "end": endDate}),
		html.H2(gomponents.Text("Daily activity")),
		html.Div(
			html.Class("inline-form"),
			html.Div(
				html.Label(gomponents.Text("From")),
				html.Input(html.Type("date"), data.Bind("start")),
			),
			html.Div(
				html.Label(gomponents.Text("To")),
				html.Input(html.Type("date"), data.Bind("end")),
			),
		),
		html.Table(
			html.THead(html.Tr(header...)),
			html.TBody(gomponents.Group(rows)),
		),
	)
}

// inRangeExpr builds the datastar expression for the inclusive date-range
// filter. Dates are YYYY-MM-DD strings, so plain string comparison works.
func inRangeExpr(date string) string {
	return fmt.Sprintf("$start <= '%s' && '%s' <= $end", date, date)
}
