package mapper

import (
	"time"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/core/domain"
)

// Task date attributes travel as ISO 8601 without zone, the format the
// filter and batch-delete endpoints accept.
const taskDateLayout = "2006-01-02T15:04:05"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		UserID:    task.OwnerID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.StartDate != nil {
		value := task.StartDate.Format(taskDateLayout)
		item.StartDate = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(taskDateLayout)
		item.DueDate = &value
	}

	if task.CompletionDate != nil {
		value := task.CompletionDate.Format(taskDateLayout)
		item.CompletionDate = &value
	}

	return item
}
