package ui

import (
	"sort"
	"time"

	"dutyboard/internal/domain"
)

const dateLayout = "2006-01-02"

// dutyGrid is a dense per-user count table over the observed date range.
// The aggregate view omits (user, date) pairs with no duties; charting wants
// every date present, so the gaps are filled with zero here.
type dutyGrid struct {
	Users []string
	Rows  []dateRow
}

type dateRow struct {
	Date   string
	Counts []int64 // aligned with Users
}

// buildDutyGrid expands sparse per-user-per-date counts into a dense grid
// spanning every calendar day from the earliest to the latest observed date.
// An empty input yields an empty grid.
func buildDutyGrid(counts []domain.UserDateCount) dutyGrid {
	if len(counts) == 0 {
		return dutyGrid{}
	}

	userSet := map[string]int{}
	byKey := map[string]int64{}
	minDate, maxDate := counts[0].Date, counts[0].Date
	for _, c := range counts {
		userSet[c.User] = 0
		byKey[c.User+"\x00"+c.Date] = c.Count
		if c.Date < minDate {
			minDate = c.Date
		}
		if c.Date > maxDate {
			maxDate = c.Date
		}
	}

	users := make([]string, 0, len(userSet))
	for u := range userSet {
		users = append(users, u)
	}
	sort.Strings(users)
	for i, u := range users {
		userSet[u] = i
	}

	start, err := time.Parse(dateLayout, minDate)
	if err != nil {
		return dutyGrid{}
	}
	end, err := time.Parse(dateLayout, maxDate)
	if err != nil {
		return dutyGrid{}
	}

	var rows []dateRow
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		row := dateRow{Date: date, Counts: make([]int64, len(users))}
		for u, i := range userSet {
			row.Counts[i] = byKey[u+"\x00"+date]
		}
		rows = append(rows, row)
	}

	return dutyGrid{Users: users, Rows: rows}
}
