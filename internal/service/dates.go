package service

import (
	"time"

	apperrors "office-management-backend/internal/errors"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD request field
func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &apperrors.ValidationError{Field: field, Message: "must be a YYYY-MM-DD date"}
	}
	return parsed, nil
}

// monthRange returns the first and last day of a calendar month
func monthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
