package ui

import (
	"net/url"
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// managePage renders the registry management panel: current users and tasks
// with inline add and delete forms.
func managePage(d *boardData) gomponents.Node {
	totalsByUser := map[string]int64{}
	for _, t := range d.Totals {
		totalsByUser[t.User] = t.Total
	}

	userRows := make([]gomponents.Node, 0, len(d.Users))
	for _, u := range d.Users {
		userRows = append(userRows, html.Tr(
			html.Td(gomponents.Text(u.Name)),
			html.Td(gomponents.Text(strconv.FormatInt(totalsByUser[u.Name], 10))),
			html.Td(deleteForm("/ui/users/"+url.PathEscape(u.Name)+"/delete")),
		))
	}

	taskRows := make([]gomponents.Node, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		taskRows = append(taskRows, html.Tr(
			html.Td(gomponents.Text(t.Name)),
			html.Td(deleteForm("/ui/tasks/"+url.PathEscape(t.Name)+"/delete")),
		))
	}

	return appPage(
		"Manage",
		"manage",
		html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Users")),
			html.Table(
				html.THead(html.Tr(html.Th(gomponents.Text("Name")), html.Th(gomponents.Text("Duties")), html.Th(gomponents.Text("")))),
				html.TBody(gomponents.Group(userRows)),
			),
			addForm("/ui/users", "Add user"),
		),
		html.Div(
			html.Class("card"),
			html.H2(gomponents.Text("Tasks")),
			html.Table(
				html.THead(html.Tr(html.Th(gomponents.Text("Name")), html.Th(gomponents.Text("")))),
				html.TBody(gomponents.Group(taskRows)),
			),
			addForm("/ui/tasks", "Add task"),
		),
	)
}

func addForm(action, label string) gomponents.Node {
	return html.Form(
		html.Method("post"),
		html.Action(action),
		html.Class("inline-form"),
		html.Div(
			html.Label(gomponents.Text("Name")),
			html.Input(html.Name("name"), html.Required()),
		),
		html.Button(html.Type("submit"), html.Class("btn btn-primary"), gomponents.Text(label)),
	)
}

func deleteForm(action string) gomponents.Node {
	return html.Form(
		html.Method("post"),
		html.Action(action),
		html.Button(html.Type("submit"), html.Class("btn btn-danger"), gomponents.Text("Delete")),
	)
}
