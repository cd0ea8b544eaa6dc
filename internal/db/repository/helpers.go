// Package repository implements the domain repository ports using SQLite.
package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"dutyboard/internal/domain"
)

// timeLayout is a fixed-width UTC ISO-8601 layout. Fixed width keeps
// lexicographic order equal to time order, which the duty queries rely on.
const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

func mapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Message: "resource not found"}
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &domain.ConflictError{Message: "resource already exists"}
	}
	return err
}
