package validation

import (
	"errors"
	"strings"
	"time"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

// Date attributes are accepted as ISO 8601 with or without a time component.
var taskDateLayouts = []string{"2006-01-02T15:04:05", "2006-01-02"}

func parseTaskDate(value string) (time.Time, error) {
	for _, layout := range taskDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidTaskPayload
}

func parseOptionalTaskDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := parseTaskDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func BuildCreateTaskInput(req dto.CreateTaskRequest, ownerID uint64) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	startDate, err := parseOptionalTaskDate(req.StartDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	dueDate, err := parseOptionalTaskDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	completionDate, err := parseOptionalTaskDate(req.CompletionDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !domain.ValidTaskStatus(status) {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	return domain.CreateTaskInput{
		OwnerID:        ownerID,
		Title:          title,
		Description:    req.Description,
		StartDate:      startDate,
		DueDate:        dueDate,
		CompletionDate: completionDate,
		Status:         status,
	}, nil
}

// BuildUpdateTaskInput assembles a partial patch. A field sent as JSON null
// counts as absent, mirroring the COALESCE update semantics of the store.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	startDate, err := parseOptionalTaskDate(req.StartDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	dueDate, err := parseOptionalTaskDate(req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	completionDate, err := parseOptionalTaskDate(req.CompletionDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		if !domain.ValidTaskStatus(value) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		StartDate:      startDate,
		DueDate:        dueDate,
		CompletionDate: completionDate,
		Status:         status,
	}, nil
}

// BuildDateRange validates the batch-delete bounds. Both bounds are required
// and the range is inclusive; a reversed range is rejected before any state
// is touched.
func BuildDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	from, err := parseTaskDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	to, err := parseTaskDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return from, to, nil
}
