package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

// TaskService enforces ownership and the single-slot undo contract on top of
// the task repository. Delete, batch delete and restore for one user are
// serialized through a per-user mutex so the restore slot, the mutated set
// and the reported count always agree; different users never contend.
type TaskService struct {
	taskRepository ports.TaskRepository

	mu        sync.Mutex
	userLocks map[uint64]*sync.Mutex
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		userLocks:      make(map[uint64]*sync.Mutex),
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) lockUser(ownerID uint64) *sync.Mutex {
	s.mu.Lock()
	lock, ok := s.userLocks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[ownerID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock
}

// authorize is the single ownership guard applied before any read or
// mutation of an existing task.
func authorize(task domain.Task, requesterID uint64) error {
	if task.OwnerID != requesterID {
		return domain.ErrTaskForbidden
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domain.Task{}, domain.ErrEmptyTaskTitle
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) GetTask(ctx context.Context, taskID, requesterID uint64) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := authorize(task, requesterID); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID, requesterID uint64, patch domain.UpdateTaskInput) (domain.Task, error) {
	if patch.Empty() {
		return domain.Task{}, domain.ErrEmptyTaskPatch
	}

	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := authorize(task, requesterID); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.Update(ctx, taskID, patch)
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID, filter)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, requesterID uint64) error {
	lock := s.lockUser(requesterID)
	defer lock.Unlock()

	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if err := authorize(task, requesterID); err != nil {
		return err
	}

	return s.taskRepository.SoftDelete(ctx, taskID)
}

func (s *TaskService) BatchDeleteTasks(ctx context.Context, ownerID uint64, from, to time.Time) (int64, error) {
	lock := s.lockUser(ownerID)
	defer lock.Unlock()

	return s.taskRepository.SoftDeleteDueBetween(ctx, ownerID, from, to)
}

// RestoreLastDeleted re-creates the task referenced by the owner's restore
// slot under a fresh id and consumes the slot. The soft-deleted row stays
// behind as dead history; with the slot cleared nothing can reach it.
func (s *TaskService) RestoreLastDeleted(ctx context.Context, ownerID uint64) (domain.Task, error) {
	lock := s.lockUser(ownerID)
	defer lock.Unlock()

	deleted, err := s.taskRepository.LastDeleted(ctx, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	restored, err := s.taskRepository.Create(ctx, domain.CreateTaskInput{
		OwnerID:        deleted.OwnerID,
		Title:          deleted.Title,
		Description:    deleted.Description,
		StartDate:      deleted.StartDate,
		DueDate:        deleted.DueDate,
		CompletionDate: deleted.CompletionDate,
		Status:         deleted.Status,
	})
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.ClearRestoreSlot(ctx, ownerID); err != nil {
		return domain.Task{}, err
	}

	return restored, nil
}
