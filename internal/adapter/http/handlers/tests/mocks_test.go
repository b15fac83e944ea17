package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskforge/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID, requesterID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, requesterID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID, requesterID uint64, patch domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, requesterID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID, requesterID uint64) error {
	args := m.Called(ctx, taskID, requesterID)
	return args.Error(0)
}

func (m *taskServiceMock) BatchDeleteTasks(ctx context.Context, ownerID uint64, from, to time.Time) (int64, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskServiceMock) RestoreLastDeleted(ctx context.Context, ownerID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Signup(ctx context.Context, username, email, password string) (domain.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Login(ctx context.Context, username, email, password string) (domain.User, error) {
	args := m.Called(ctx, username, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Resolve(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

type subscriptionServiceMock struct {
	mock.Mock
}

func (m *subscriptionServiceMock) Subscribe(ctx context.Context, userID uint64, frequency domain.SubscriptionFrequency) error {
	args := m.Called(ctx, userID, frequency)
	return args.Error(0)
}

func (m *subscriptionServiceMock) Unsubscribe(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
