// Package memory provides in-process implementations of the persistence
// ports. They back STORE_DRIVER=memory and the service-level tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

type TaskStore struct {
	mu     sync.RWMutex
	nextID uint64
	tasks  map[uint64]domain.Task
	// slots holds the single restorable task id per owner.
	slots map[uint64]uint64
}

var _ ports.TaskRepository = (*TaskStore)(nil)

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[uint64]domain.Task),
		slots: make(map[uint64]uint64),
	}
}

func (s *TaskStore) Create(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now()
	task := domain.Task{
		ID:             s.nextID,
		OwnerID:        input.OwnerID,
		Title:          input.Title,
		Description:    input.Description,
		StartDate:      input.StartDate,
		DueDate:        input.DueDate,
		CompletionDate: input.CompletionDate,
		Status:         input.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.tasks[task.ID] = task

	return task, nil
}

func (s *TaskStore) GetByID(_ context.Context, taskID uint64) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok || task.Deleted {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskStore) Update(_ context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || task.Deleted {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = patch.Description
	}
	if patch.StartDate != nil {
		task.StartDate = patch.StartDate
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.CompletionDate != nil {
		task.CompletionDate = patch.CompletionDate
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	task.UpdatedAt = time.Now()

	s.tasks[taskID] = task
	return task, nil
}

func (s *TaskStore) ListByOwner(_ context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, task := range s.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if !filter.Matches(task) {
			continue
		}
		tasks = append(tasks, task)
	}

	// Creation order: ids are assigned monotonically.
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *TaskStore) SoftDelete(_ context.Context, taskID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || task.Deleted {
		return domain.ErrTaskNotFound
	}

	task.Deleted = true
	task.UpdatedAt = time.Now()
	s.tasks[taskID] = task
	s.slots[task.OwnerID] = taskID

	return nil
}

func (s *TaskStore) SoftDeleteDueBetween(_ context.Context, ownerID uint64, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint64, 0)
	for _, task := range s.tasks {
		if task.OwnerID != ownerID || task.Deleted || task.DueDate == nil {
			continue
		}
		if task.DueDate.Before(from) || task.DueDate.After(to) {
			continue
		}
		ids = append(ids, task.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	now := time.Now()
	for _, id := range ids {
		task := s.tasks[id]
		task.Deleted = true
		task.UpdatedAt = now
		s.tasks[id] = task
	}
	s.slots[ownerID] = ids[len(ids)-1]

	return int64(len(ids)), nil
}

func (s *TaskStore) LastDeleted(_ context.Context, ownerID uint64) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taskID, ok := s.slots[ownerID]
	if !ok {
		return domain.Task{}, domain.ErrNoRestorableTask
	}

	task, ok := s.tasks[taskID]
	if !ok {
		return domain.Task{}, domain.ErrNoRestorableTask
	}
	return task, nil
}

func (s *TaskStore) ClearRestoreSlot(_ context.Context, ownerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, ownerID)
	return nil
}
