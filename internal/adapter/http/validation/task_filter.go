package validation

import (
	"errors"
	"net/url"
	"strings"

	"taskforge/internal/core/domain"
)

var ErrInvalidTaskFilter = errors.New("invalid task filter")

// statusOverdue is accepted only as a filter value: due date in the past and
// the task not completed.
const statusOverdue = "overdue"

// BuildTaskFilter turns the list query string into a predicate. Any key
// other than status/date_from/date_to is rejected, as are unparsable dates
// and a reversed range.
func BuildTaskFilter(query url.Values) (domain.TaskFilter, error) {
	for key := range query {
		switch key {
		case "status", "date_from", "date_to":
		default:
			return domain.TaskFilter{}, ErrInvalidTaskFilter
		}
	}

	var filter domain.TaskFilter

	if value := query.Get("status"); value != "" {
		switch status := domain.TaskStatus(strings.ToLower(value)); {
		case status == statusOverdue:
			filter.Overdue = true
		case domain.ValidTaskStatus(status):
			filter.Status = &status
		default:
			return domain.TaskFilter{}, ErrInvalidTaskFilter
		}
	}

	if value := query.Get("date_from"); value != "" {
		parsed, err := parseTaskDate(value)
		if err != nil {
			return domain.TaskFilter{}, ErrInvalidTaskFilter
		}
		filter.DueFrom = &parsed
	}

	if value := query.Get("date_to"); value != "" {
		parsed, err := parseTaskDate(value)
		if err != nil {
			return domain.TaskFilter{}, ErrInvalidTaskFilter
		}
		filter.DueTo = &parsed
	}

	if filter.DueFrom != nil && filter.DueTo != nil && filter.DueFrom.After(*filter.DueTo) {
		return domain.TaskFilter{}, ErrInvalidTaskFilter
	}

	return filter, nil
}
