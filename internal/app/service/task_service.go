package service

import (
	"context"
	"time"

	"todo/internal/core/domain"
	"todo/internal/core/ports"
)

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type TaskService struct {
	taskRepository ports.TaskRepository
	clock          ports.Clock
	defaultDueDays int
}

func NewTaskService(taskRepository ports.TaskRepository, clock ports.Clock, defaultDueDays int) *TaskService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TaskService{
		taskRepository: taskRepository,
		clock:          clock,
		defaultDueDays: defaultDueDays,
	}
}

func (s *TaskService) ListBoard(ctx context.Context) (domain.Board, error) {
	var board domain.Board
	for _, status := range domain.TaskStatuses {
		tasks, err := s.taskRepository.ListByStatus(ctx, status)
		if err != nil {
			return domain.Board{}, err
		}

		switch status {
		case domain.TaskStatusNotStarted:
			board.NotStarted = tasks
		case domain.TaskStatusInProgress:
			board.InProgress = tasks
		case domain.TaskStatusCompleted:
			board.Completed = tasks
		}
	}
	return board, nil
}

// CreateTask stores a new not-started task. The clock is read once so that
// created_at and the defaulted due date agree.
func (s *TaskService) CreateTask(ctx context.Context, task domain.NewTask) (int64, error) {
	now := s.clock.Now()

	dueAt := task.DueAt
	if dueAt == "" {
		dueAt = domain.DefaultDueAt(now, s.defaultDueDays)
	}

	return s.taskRepository.Create(ctx, domain.CreateTaskInput{
		Text:      task.Text,
		DueAt:     dueAt,
		CreatedAt: now,
	})
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) ApplyTransition(ctx context.Context, id int64, transition domain.Transition) (bool, error) {
	change, err := transition.Apply(s.clock.Now())
	if err != nil {
		return false, err
	}
	return s.taskRepository.UpdateStatus(ctx, id, change)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return s.taskRepository.Delete(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
