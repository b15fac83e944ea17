package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// ValidTaskStatus reports whether s can be stored on a task.
// "overdue" is a filter-only pseudo status and is rejected here.
func ValidTaskStatus(s TaskStatus) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

type Task struct {
	ID             uint64
	OwnerID        uint64
	Title          string
	Description    *string
	StartDate      *time.Time
	DueDate        *time.Time
	CompletionDate *time.Time
	Status         TaskStatus
	Deleted        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateTaskInput struct {
	OwnerID        uint64
	Title          string
	Description    *string
	StartDate      *time.Time
	DueDate        *time.Time
	CompletionDate *time.Time
	Status         TaskStatus
}

// UpdateTaskInput carries a partial patch: nil fields keep the stored value.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	StartDate      *time.Time
	DueDate        *time.Time
	CompletionDate *time.Time
	Status         *TaskStatus
}

// Empty reports whether the patch supplies no fields at all.
func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.StartDate == nil &&
		in.DueDate == nil &&
		in.CompletionDate == nil &&
		in.Status == nil
}
