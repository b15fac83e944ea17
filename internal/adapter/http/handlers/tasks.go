package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/mapper"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/adapter/http/validation"
	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
	"taskforge/pkg/metrics"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, ownerID)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTaskTitle) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	metrics.TasksCreatedCount.Inc()
	c.JSON(http.StatusCreated, dto.CreateTaskResponse{Message: "Task created", TaskID: task.ID})
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	filter, err := validation.BuildTaskFilter(c.Request.URL.Query())
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskFilter, lang),
		)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), ownerID, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{Tasks: mapper.ToTaskItems(tasks)})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	requesterID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID, requesterID)
	if err != nil {
		h.renderTaskError(c, lang, taskID, err, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	requesterID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	patch, err := validation.BuildUpdateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, requesterID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTaskPatch) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmptyTaskPatch, lang),
			)
			return
		}
		h.renderTaskError(c, lang, taskID, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	requesterID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, requesterID); err != nil {
		h.renderTaskError(c, lang, taskID, err, apierrors.MsgFailDeleteTask)
		return
	}

	metrics.IncrementTasksDeleted("single", 1)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted"})
}

func (h *TaskHandler) BatchDeleteTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	var req dto.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang),
		)
		return
	}

	from, to, err := validation.BuildDateRange(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDateRange, lang),
		)
		return
	}

	count, err := h.taskService.BatchDeleteTasks(c.Request.Context(), ownerID, from, to)
	if err != nil {
		zap.L().Error("failed to batch delete tasks", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBatchDelete, lang),
		)
		return
	}

	metrics.IncrementTasksDeleted("batch", count)
	c.JSON(http.StatusOK, dto.BatchDeleteResponse{
		Message:      strconv.FormatInt(count, 10) + " tasks deleted successfully",
		DeletedCount: count,
	})
}

func (h *TaskHandler) RestoreLastDeleted(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID := middleware.GetUserID(c)

	task, err := h.taskService.RestoreLastDeleted(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNoRestorableTask) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoRestorableTask, lang),
			)
			return
		}

		zap.L().Error("failed to restore task", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRestoreTask, lang),
		)
		return
	}

	metrics.TasksRestoredCount.Inc()
	c.JSON(http.StatusOK, dto.RestoreTaskResponse{Message: "Task restored", NewTaskID: task.ID})
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}

func (h *TaskHandler) renderTaskError(c *gin.Context, lang string, taskID uint64, err error, failMsg string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskForbidden):
		// Same body for every foreign task: never leak its content.
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgTaskForbidden, lang),
		)
	default:
		zap.L().Error("task operation failed", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsg, lang),
		)
	}
}
