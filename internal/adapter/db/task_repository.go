package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/metrics"
)

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID             uint64         `db:"id"`
	OwnerID        uint64         `db:"owner_id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	StartDate      sql.NullTime   `db:"start_date"`
	DueDate        sql.NullTime   `db:"due_date"`
	CompletionDate sql.NullTime   `db:"completion_date"`
	Status         string         `db:"status"`
	Deleted        bool           `db:"deleted"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

const insertTaskQuery = `
INSERT INTO tasks (owner_id, title, description, start_date, due_date, completion_date, status)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	defer metrics.ObserveStoreQuery("create", "tasks", time.Now())

	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		input.OwnerID,
		input.Title,
		input.Description,
		nullableTime(input.StartDate),
		nullableTime(input.DueDate),
		nullableTime(input.CompletionDate),
		string(input.Status),
	)
	if err != nil {
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, uint64(taskID))
}

const getTaskQuery = `
SELECT * FROM tasks WHERE id = ? AND deleted = 0;
`

func (r *TaskRepository) GetByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	defer metrics.ObserveStoreQuery("get", "tasks", time.Now())

	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// COALESCE keeps stored values for fields the patch leaves nil, matching the
// service-level patch semantics without building the statement dynamically.
const updateTaskQuery = `
UPDATE tasks SET
  title = COALESCE(?, title),
  description = COALESCE(?, description),
  start_date = COALESCE(?, start_date),
  due_date = COALESCE(?, due_date),
  completion_date = COALESCE(?, completion_date),
  status = COALESCE(?, status)
WHERE id = ? AND deleted = 0;
`

func (r *TaskRepository) Update(ctx context.Context, taskID uint64, patch domain.UpdateTaskInput) (domain.Task, error) {
	defer metrics.ObserveStoreQuery("update", "tasks", time.Now())

	var status *string
	if patch.Status != nil {
		value := string(*patch.Status)
		status = &value
	}

	if _, err := r.db.ExecContext(ctx, updateTaskQuery,
		patch.Title,
		patch.Description,
		nullableTime(patch.StartDate),
		nullableTime(patch.DueDate),
		nullableTime(patch.CompletionDate),
		status,
		taskID,
	); err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, taskID)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	defer metrics.ObserveStoreQuery("list", "tasks", time.Now())

	query := "SELECT * FROM tasks WHERE owner_id = ? AND deleted = 0"
	args := []interface{}{ownerID}

	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, string(*filter.Status))
	}
	if filter.Overdue {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		query += " AND due_date < ? AND status != ?"
		args = append(args, now, string(domain.TaskStatusCompleted))
	}
	if filter.DueFrom != nil {
		query += " AND due_date >= ?"
		args = append(args, *filter.DueFrom)
	}
	if filter.DueTo != nil {
		query += " AND due_date <= ?"
		args = append(args, *filter.DueTo)
	}
	query += " ORDER BY id;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

const upsertRestoreSlotQuery = `
INSERT INTO restore_slots (owner_id, task_id)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE task_id = VALUES(task_id);
`

func (r *TaskRepository) SoftDelete(ctx context.Context, taskID uint64) error {
	defer metrics.ObserveStoreQuery("soft_delete", "tasks", time.Now())

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		var ownerID uint64
		err := tx.GetContext(ctx, &ownerID, "SELECT owner_id FROM tasks WHERE id = ? AND deleted = 0", taskID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "UPDATE tasks SET deleted = 1 WHERE id = ?", taskID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, upsertRestoreSlotQuery, ownerID, taskID)
		return err
	})
}

func (r *TaskRepository) SoftDeleteDueBetween(ctx context.Context, ownerID uint64, from, to time.Time) (int64, error) {
	defer metrics.ObserveStoreQuery("batch_delete", "tasks", time.Now())

	var count int64
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var ids []uint64
		if err := tx.SelectContext(ctx, &ids,
			"SELECT id FROM tasks WHERE owner_id = ? AND deleted = 0 AND due_date BETWEEN ? AND ? ORDER BY id",
			ownerID, from, to,
		); err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		query, args, err := sqlx.In("UPDATE tasks SET deleted = 1 WHERE id IN (?)", ids)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return err
		}

		// The slot points at the last task processed, same as a single delete.
		if _, err := tx.ExecContext(ctx, upsertRestoreSlotQuery, ownerID, ids[len(ids)-1]); err != nil {
			return err
		}

		count = int64(len(ids))
		return nil
	})
	return count, err
}

const lastDeletedQuery = `
SELECT t.* FROM restore_slots s
JOIN tasks t ON t.id = s.task_id
WHERE s.owner_id = ?;
`

func (r *TaskRepository) LastDeleted(ctx context.Context, ownerID uint64) (domain.Task, error) {
	defer metrics.ObserveStoreQuery("last_deleted", "restore_slots", time.Now())

	var row taskRow
	if err := r.db.GetContext(ctx, &row, lastDeletedQuery, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrNoRestorableTask
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ClearRestoreSlot(ctx context.Context, ownerID uint64) error {
	defer metrics.ObserveStoreQuery("clear_slot", "restore_slots", time.Now())

	_, err := r.db.ExecContext(ctx, "DELETE FROM restore_slots WHERE owner_id = ?", ownerID)
	return err
}

func (r *TaskRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.StartDate.Valid {
		value := row.StartDate.Time
		task.StartDate = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CompletionDate.Valid {
		value := row.CompletionDate.Time
		task.CompletionDate = &value
	}

	return task
}
