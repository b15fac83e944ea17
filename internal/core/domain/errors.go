package domain

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskForbidden    = errors.New("task owned by another user")
	ErrEmptyTaskTitle   = errors.New("task title is empty")
	ErrEmptyTaskPatch   = errors.New("task patch is empty")
	ErrNoRestorableTask = errors.New("no restorable task")

	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
