package ports

import (
	"context"
	"time"

	"todo/internal/core/domain"
)

type TaskRepository interface {
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	// UpdateStatus reports false when no task has the given id.
	UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TaskService interface {
	ListBoard(ctx context.Context) (domain.Board, error)
	CreateTask(ctx context.Context, task domain.NewTask) (int64, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	ApplyTransition(ctx context.Context, id int64, transition domain.Transition) (bool, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

type Clock interface {
	Now() time.Time
}
