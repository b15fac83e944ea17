package ports

import (
	"context"
	"time"

	"taskforge/internal/core/domain"
)

// TaskRepository owns the durable task collection and the per-user restore
// slot. Lookups never return soft-deleted tasks; the slot is the only path
// back to one.
type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error)
	ListByOwner(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error)

	// SoftDelete marks the task deleted and points the owner's restore slot
	// at it. SoftDeleteDueBetween does the same for every non-deleted task of
	// ownerID whose due date falls in [from, to], the slot ending on the last
	// task processed; both mutations happen in one atomic step.
	SoftDelete(ctx context.Context, taskID uint64) error
	SoftDeleteDueBetween(ctx context.Context, ownerID uint64, from, to time.Time) (int64, error)

	// LastDeleted resolves the restore slot to its task, or
	// domain.ErrNoRestorableTask when the slot is empty.
	LastDeleted(ctx context.Context, ownerID uint64) (domain.Task, error)
	ClearRestoreSlot(ctx context.Context, ownerID uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, taskID, requesterID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID, requesterID uint64, patch domain.UpdateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	DeleteTask(ctx context.Context, taskID, requesterID uint64) error
	BatchDeleteTasks(ctx context.Context, ownerID uint64, from, to time.Time) (int64, error)
	RestoreLastDeleted(ctx context.Context, ownerID uint64) (domain.Task, error)
}
