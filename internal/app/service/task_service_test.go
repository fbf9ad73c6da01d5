package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo/internal/app/service"
	"todo/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) (bool, error) {
	args := m.Called(ctx, id, change)
	return args.Bool(0), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var fixedNow = time.Date(2026, 1, 17, 8, 15, 0, 0, time.UTC)

func TestTaskService_ListBoard(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("ListByStatus", mock.Anything, domain.TaskStatusNotStarted).
		Return([]domain.Task{{ID: 1, Text: "a"}, {ID: 4, Text: "d"}}, nil).Once()
	repo.On("ListByStatus", mock.Anything, domain.TaskStatusInProgress).
		Return([]domain.Task{{ID: 2, Text: "b", Status: domain.TaskStatusInProgress}}, nil).Once()
	repo.On("ListByStatus", mock.Anything, domain.TaskStatusCompleted).
		Return([]domain.Task{}, nil).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
	board, err := svc.ListBoard(context.Background())

	require.NoError(t, err)
	require.Len(t, board.NotStarted, 2)
	require.Equal(t, int64(1), board.NotStarted[0].ID)
	require.Equal(t, int64(4), board.NotStarted[1].ID)
	require.Len(t, board.InProgress, 1)
	require.Empty(t, board.Completed)
	repo.AssertExpectations(t)
}

func TestTaskService_ListBoard_Error(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("ListByStatus", mock.Anything, domain.TaskStatusNotStarted).
		Return(nil, domain.ErrStoreQuery).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
	_, err := svc.ListBoard(context.Background())

	require.True(t, errors.Is(err, domain.ErrStoreQuery))
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_DefaultsDueDate(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Create", mock.Anything, domain.CreateTaskInput{
		Text:      "buy milk",
		DueAt:     "2026-02-16 08:15:00",
		CreatedAt: fixedNow,
	}).Return(int64(1), nil).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
	id, err := svc.CreateTask(context.Background(), domain.NewTask{Text: "buy milk"})

	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_ConfiguredDueDays(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.DueAt == "2026-01-24 08:15:00"
	})).Return(int64(9), nil).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 7)
	id, err := svc.CreateTask(context.Background(), domain.NewTask{Text: "file taxes"})

	require.NoError(t, err)
	require.Equal(t, int64(9), id)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_KeepsExplicitDueDate(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Create", mock.Anything, domain.CreateTaskInput{
		Text:      "renew passport",
		DueAt:     "2026-05-01 00:00:00",
		CreatedAt: fixedNow,
	}).Return(int64(2), nil).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
	_, err := svc.CreateTask(context.Background(), domain.NewTask{Text: "renew passport", DueAt: "2026-05-01 00:00:00"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTaskService_ApplyTransition(t *testing.T) {
	tests := []struct {
		transition domain.Transition
		change     domain.StatusChange
	}{
		{domain.TransitionStart, domain.StatusChange{Status: domain.TaskStatusInProgress, Field: domain.FieldStartedAt, At: &fixedNow}},
		{domain.TransitionDone, domain.StatusChange{Status: domain.TaskStatusCompleted, Field: domain.FieldDoneAt, At: &fixedNow}},
		{domain.TransitionUndo, domain.StatusChange{Status: domain.TaskStatusNotStarted, Field: domain.FieldStartedAt}},
		{domain.TransitionDoing, domain.StatusChange{Status: domain.TaskStatusInProgress, Field: domain.FieldDoneAt}},
	}

	for _, tt := range tests {
		t.Run(string(tt.transition), func(t *testing.T) {
			repo := new(taskRepositoryMock)
			repo.On("UpdateStatus", mock.Anything, int64(3), tt.change).Return(true, nil).Once()

			svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
			updated, err := svc.ApplyTransition(context.Background(), 3, tt.transition)

			require.NoError(t, err)
			require.True(t, updated)
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_ApplyTransition_MissingTask(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("UpdateStatus", mock.Anything, int64(99), mock.Anything).Return(false, nil).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
	updated, err := svc.ApplyTransition(context.Background(), 99, domain.TransitionStart)

	require.NoError(t, err)
	require.False(t, updated)
	repo.AssertExpectations(t)
}

func TestTaskService_ApplyTransition_Unknown(t *testing.T) {
	repo := new(taskRepositoryMock)

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)
	_, err := svc.ApplyTransition(context.Background(), 1, domain.Transition("archive"))

	require.True(t, errors.Is(err, domain.ErrUnknownTransition))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_DeleteAndGet(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("Delete", mock.Anything, int64(5)).Return(true, nil).Once()
	repo.On("GetByID", mock.Anything, int64(5)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	svc := service.NewTaskService(repo, fixedClock{fixedNow}, 30)

	deleted, err := svc.DeleteTask(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = svc.GetTask(context.Background(), 5)
	require.True(t, errors.Is(err, domain.ErrTaskNotFound))
	repo.AssertExpectations(t)
}

func TestNewTaskService_DefaultsToSystemClock(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("UpdateStatus", mock.Anything, int64(1), mock.MatchedBy(func(change domain.StatusChange) bool {
		return change.At != nil && time.Since(*change.At) < time.Minute
	})).Return(true, nil).Once()

	svc := service.NewTaskService(repo, nil, 30)
	_, err := svc.ApplyTransition(context.Background(), 1, domain.TransitionStart)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
