package dto

type TaskItem struct {
	ID             uint64  `json:"id"`
	UserID         uint64  `json:"user_id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	DueDate        *string `json:"due_date,omitempty"`
	CompletionDate *string `json:"completion_date,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type TaskListResponse struct {
	Tasks []TaskItem `json:"tasks"`
}

type CreateTaskRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	StartDate      *string `json:"start_date"`
	DueDate        *string `json:"due_date"`
	CompletionDate *string `json:"completion_date"`
	Status         *string `json:"status" binding:"omitempty,oneof=pending completed"`
}

type UpdateTaskRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=255"`
	Description    *string `json:"description" binding:"omitempty,max=65535"`
	StartDate      *string `json:"start_date"`
	DueDate        *string `json:"due_date"`
	CompletionDate *string `json:"completion_date"`
	Status         *string `json:"status" binding:"omitempty,oneof=pending completed"`
}

type BatchDeleteRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type CreateTaskResponse struct {
	Message string `json:"message"`
	TaskID  uint64 `json:"task_id"`
}

type BatchDeleteResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

type RestoreTaskResponse struct {
	Message   string `json:"message"`
	NewTaskID uint64 `json:"new_task_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
