package domain

import "time"

// TaskFilter is the predicate evaluated by list queries. Conditions compose
// conjunctively; the zero value matches every non-deleted task.
type TaskFilter struct {
	Status  *TaskStatus
	Overdue bool
	DueFrom *time.Time
	DueTo   *time.Time

	// Now anchors the overdue comparison. Zero means time.Now at evaluation.
	Now time.Time
}

// Matches reports whether t satisfies every condition of the filter.
// Deleted tasks never match.
func (f TaskFilter) Matches(t Task) bool {
	if t.Deleted {
		return false
	}

	if f.Status != nil && t.Status != *f.Status {
		return false
	}

	if f.Overdue {
		now := f.Now
		if now.IsZero() {
			now = time.Now()
		}
		if t.DueDate == nil || !t.DueDate.Before(now) || t.Status == TaskStatusCompleted {
			return false
		}
	}

	// Range bounds are inclusive and evaluated against the due date.
	if f.DueFrom != nil {
		if t.DueDate == nil || t.DueDate.Before(*f.DueFrom) {
			return false
		}
	}
	if f.DueTo != nil {
		if t.DueDate == nil || t.DueDate.After(*f.DueTo) {
			return false
		}
	}

	return true
}
