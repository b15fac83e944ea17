package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskforge/internal/adapter/memory"
	appservice "taskforge/internal/app/service"
	"taskforge/internal/core/domain"
)

func newTaskService() (*appservice.TaskService, *memory.TaskStore) {
	store := memory.NewTaskStore()
	return appservice.NewTaskService(store), store
}

func mustCreate(t *testing.T, svc *appservice.TaskService, ownerID uint64, title string, due *time.Time) domain.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
		OwnerID: ownerID,
		Title:   title,
		DueDate: due,
	})
	require.NoError(t, err)
	return task
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestTaskService_CreateTask_DefaultsToPending(t *testing.T) {
	svc, _ := newTaskService()

	task := mustCreate(t, svc, 1, "write report", nil)

	require.NotZero(t, task.ID)
	require.Equal(t, uint64(1), task.OwnerID)
	require.Equal(t, domain.TaskStatusPending, task.Status)
	require.False(t, task.Deleted)
}

func TestTaskService_CreateTask_RejectsBlankTitle(t *testing.T) {
	svc, _ := newTaskService()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
			OwnerID: 1,
			Title:   title,
		})
		require.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
	}

	tasks, err := svc.ListTasks(context.Background(), 1, domain.TaskFilter{})
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskService_GetTask_OtherOwnerIsForbidden(t *testing.T) {
	svc, _ := newTaskService()
	task := mustCreate(t, svc, 1, "private task", nil)

	_, err := svc.GetTask(context.Background(), task.ID, 2)
	require.ErrorIs(t, err, domain.ErrTaskForbidden)

	got, err := svc.GetTask(context.Background(), task.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "private task", got.Title)
}

func TestTaskService_GetTask_UnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTaskService()

	_, err := svc.GetTask(context.Background(), 42, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_UpdateTask_PatchesOnlySuppliedFields(t *testing.T) {
	svc, _ := newTaskService()
	description := "first draft"
	task, err := svc.CreateTask(context.Background(), domain.CreateTaskInput{
		OwnerID:     1,
		Title:       "write report",
		Description: &description,
		DueDate:     datePtr(2025, time.April, 10),
	})
	require.NoError(t, err)

	newTitle := "write final report"
	updated, err := svc.UpdateTask(context.Background(), task.ID, 1, domain.UpdateTaskInput{Title: &newTitle})
	require.NoError(t, err)

	require.Equal(t, "write final report", updated.Title)
	require.NotNil(t, updated.Description)
	require.Equal(t, "first draft", *updated.Description)
	require.NotNil(t, updated.DueDate)
	require.Equal(t, *datePtr(2025, time.April, 10), *updated.DueDate)
}

func TestTaskService_UpdateTask_EmptyPatchChangesNothing(t *testing.T) {
	svc, _ := newTaskService()
	task := mustCreate(t, svc, 1, "write report", nil)

	_, err := svc.UpdateTask(context.Background(), task.ID, 1, domain.UpdateTaskInput{})
	require.ErrorIs(t, err, domain.ErrEmptyTaskPatch)

	got, err := svc.GetTask(context.Background(), task.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "write report", got.Title)
}

func TestTaskService_UpdateTask_OtherOwnerIsForbidden(t *testing.T) {
	svc, _ := newTaskService()
	task := mustCreate(t, svc, 1, "write report", nil)

	newTitle := "hijacked"
	_, err := svc.UpdateTask(context.Background(), task.ID, 2, domain.UpdateTaskInput{Title: &newTitle})
	require.ErrorIs(t, err, domain.ErrTaskForbidden)

	got, err := svc.GetTask(context.Background(), task.ID, 1)
	require.NoError(t, err)
	require.Equal(t, "write report", got.Title)
}

func TestTaskService_DeleteTask_HidesTaskEverywhere(t *testing.T) {
	svc, _ := newTaskService()
	task := mustCreate(t, svc, 1, "to be deleted", nil)
	kept := mustCreate(t, svc, 1, "kept", nil)

	require.NoError(t, svc.DeleteTask(context.Background(), task.ID, 1))

	_, err := svc.GetTask(context.Background(), task.ID, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	listed, err := svc.ListTasks(context.Background(), 1, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, kept.ID, listed[0].ID)
}

func TestTaskService_DeleteTask_OtherOwnerIsForbidden(t *testing.T) {
	svc, _ := newTaskService()
	task := mustCreate(t, svc, 1, "mine", nil)

	require.ErrorIs(t, svc.DeleteTask(context.Background(), task.ID, 2), domain.ErrTaskForbidden)

	_, err := svc.GetTask(context.Background(), task.ID, 1)
	require.NoError(t, err)
}

func TestTaskService_RestoreLastDeleted_ReturnsNewIDAndConsumesSlot(t *testing.T) {
	svc, _ := newTaskService()
	task := mustCreate(t, svc, 1, "undo me", datePtr(2025, time.April, 10))

	require.NoError(t, svc.DeleteTask(context.Background(), task.ID, 1))

	restored, err := svc.RestoreLastDeleted(context.Background(), 1)
	require.NoError(t, err)
	require.NotEqual(t, task.ID, restored.ID)
	require.Equal(t, "undo me", restored.Title)
	require.Equal(t, *datePtr(2025, time.April, 10), *restored.DueDate)
	require.False(t, restored.Deleted)

	// The slot is single-use.
	_, err = svc.RestoreLastDeleted(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNoRestorableTask)
}

func TestTaskService_RestoreLastDeleted_EmptySlotIsNotFound(t *testing.T) {
	svc, _ := newTaskService()

	_, err := svc.RestoreLastDeleted(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNoRestorableTask)
}

func TestTaskService_RestoreLastDeleted_LatestDeletionWins(t *testing.T) {
	svc, _ := newTaskService()
	first := mustCreate(t, svc, 1, "first", nil)
	second := mustCreate(t, svc, 1, "second", nil)

	require.NoError(t, svc.DeleteTask(context.Background(), first.ID, 1))
	require.NoError(t, svc.DeleteTask(context.Background(), second.ID, 1))

	restored, err := svc.RestoreLastDeleted(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "second", restored.Title)

	// "first" was superseded and is gone for good.
	_, err = svc.RestoreLastDeleted(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNoRestorableTask)
}

func TestTaskService_RestoreSlots_AreIndependentPerUser(t *testing.T) {
	svc, _ := newTaskService()
	mine := mustCreate(t, svc, 1, "mine", nil)
	theirs := mustCreate(t, svc, 2, "theirs", nil)

	require.NoError(t, svc.DeleteTask(context.Background(), mine.ID, 1))
	require.NoError(t, svc.DeleteTask(context.Background(), theirs.ID, 2))

	restored, err := svc.RestoreLastDeleted(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "mine", restored.Title)

	restored, err = svc.RestoreLastDeleted(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "theirs", restored.Title)
}

func TestTaskService_BatchDeleteTasks_DeletesExactlyTheRange(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	taskA := mustCreate(t, svc, 1, "task A", datePtr(2025, time.April, 10))
	taskB := mustCreate(t, svc, 1, "task B", datePtr(2025, time.April, 20))
	noDue := mustCreate(t, svc, 1, "no due date", nil)
	foreign := mustCreate(t, svc, 2, "foreign", datePtr(2025, time.April, 10))

	count, err := svc.BatchDeleteTasks(ctx, 1,
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	_, err = svc.GetTask(ctx, taskA.ID, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = svc.GetTask(ctx, taskB.ID, 1)
	require.NoError(t, err)
	_, err = svc.GetTask(ctx, noDue.ID, 1)
	require.NoError(t, err)
	_, err = svc.GetTask(ctx, foreign.ID, 2)
	require.NoError(t, err)

	// Restore then yields a task with A's original title under a new id.
	restored, err := svc.RestoreLastDeleted(ctx, 1)
	require.NoError(t, err)
	require.NotEqual(t, taskA.ID, restored.ID)
	require.Equal(t, "task A", restored.Title)
}

func TestTaskService_BatchDeleteTasks_BoundsAreInclusive(t *testing.T) {
	svc, _ := newTaskService()

	mustCreate(t, svc, 1, "on lower bound", datePtr(2025, time.April, 1))
	mustCreate(t, svc, 1, "on upper bound", datePtr(2025, time.April, 15))

	count, err := svc.BatchDeleteTasks(context.Background(), 1,
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestTaskService_BatchDeleteTasks_EmptyRangeIsSuccess(t *testing.T) {
	svc, _ := newTaskService()
	mustCreate(t, svc, 1, "far future", datePtr(2030, time.January, 1))

	count, err := svc.BatchDeleteTasks(context.Background(), 1,
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Zero(t, count)

	// An empty batch leaves a previously recorded slot untouched.
	_, err = svc.RestoreLastDeleted(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNoRestorableTask)
}

func TestTaskService_BatchDeleteTasks_SlotPointsAtLastProcessed(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	mustCreate(t, svc, 1, "early", datePtr(2025, time.April, 5))
	mustCreate(t, svc, 1, "late", datePtr(2025, time.April, 12))

	count, err := svc.BatchDeleteTasks(ctx, 1,
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	restored, err := svc.RestoreLastDeleted(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "late", restored.Title)
}

func TestTaskService_ListTasks_StatusFilter(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	pending := mustCreate(t, svc, 1, "pending one", nil)
	completedStatus := domain.TaskStatusCompleted
	done, err := svc.CreateTask(ctx, domain.CreateTaskInput{
		OwnerID: 1,
		Title:   "done one",
		Status:  completedStatus,
	})
	require.NoError(t, err)

	status := domain.TaskStatusCompleted
	listed, err := svc.ListTasks(ctx, 1, domain.TaskFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, done.ID, listed[0].ID)

	status = domain.TaskStatusPending
	listed, err = svc.ListTasks(ctx, 1, domain.TaskFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, pending.ID, listed[0].ID)
}

func TestTaskService_ListTasks_DateRangeAndConjunction(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	inRange := mustCreate(t, svc, 1, "in range", datePtr(2025, time.April, 10))
	mustCreate(t, svc, 1, "out of range", datePtr(2025, time.May, 10))
	completed := domain.TaskStatusCompleted
	_, err := svc.CreateTask(ctx, domain.CreateTaskInput{
		OwnerID: 1,
		Title:   "in range but completed",
		DueDate: datePtr(2025, time.April, 12),
		Status:  completed,
	})
	require.NoError(t, err)

	pending := domain.TaskStatusPending
	listed, err := svc.ListTasks(ctx, 1, domain.TaskFilter{
		Status:  &pending,
		DueFrom: datePtr(2025, time.April, 1),
		DueTo:   datePtr(2025, time.April, 15),
	})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, inRange.ID, listed[0].ID)
}

func TestTaskService_ListTasks_OverdueFilter(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()
	now := time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)

	overdue := mustCreate(t, svc, 1, "overdue", datePtr(2025, time.April, 10))
	mustCreate(t, svc, 1, "not due yet", datePtr(2025, time.April, 25))
	completed := domain.TaskStatusCompleted
	_, err := svc.CreateTask(ctx, domain.CreateTaskInput{
		OwnerID: 1,
		Title:   "past due but completed",
		DueDate: datePtr(2025, time.April, 5),
		Status:  completed,
	})
	require.NoError(t, err)

	listed, err := svc.ListTasks(ctx, 1, domain.TaskFilter{Overdue: true, Now: now})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, overdue.ID, listed[0].ID)
}

func TestTaskService_ListTasks_ReturnsCreationOrder(t *testing.T) {
	svc, _ := newTaskService()

	first := mustCreate(t, svc, 1, "first", nil)
	second := mustCreate(t, svc, 1, "second", nil)
	third := mustCreate(t, svc, 1, "third", nil)

	listed, err := svc.ListTasks(context.Background(), 1, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, []uint64{first.ID, second.ID, third.ID}, []uint64{listed[0].ID, listed[1].ID, listed[2].ID})
}
