package domain

import (
	"fmt"
	"time"
)

// DateTimeLayout is the text layout used for due dates and rendered timestamps.
const DateTimeLayout = "2006-01-02 15:04:05"

type TaskStatus uint8

const (
	TaskStatusNotStarted TaskStatus = iota
	TaskStatusInProgress
	TaskStatusCompleted
)

// TaskStatuses lists every status in board order.
var TaskStatuses = []TaskStatus{TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted}

func (s TaskStatus) Valid() bool {
	return s <= TaskStatusCompleted
}

func (s TaskStatus) String() string {
	switch s {
	case TaskStatusNotStarted:
		return "not_started"
	case TaskStatusInProgress:
		return "in_progress"
	case TaskStatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("TaskStatus(%d)", uint8(s))
	}
}

type Task struct {
	ID        int64
	Text      string
	Status    TaskStatus
	CreatedAt time.Time
	DueAt     string
	StartedAt *time.Time
	DoneAt    *time.Time
}

type CreateTaskInput struct {
	Text      string
	DueAt     string
	CreatedAt time.Time
}

// NewTask is what a caller submits; an empty DueAt asks for the default.
type NewTask struct {
	Text  string
	DueAt string
}

type Board struct {
	NotStarted []Task
	InProgress []Task
	Completed  []Task
}

// DefaultDueAt returns the due date given to tasks created without one.
func DefaultDueAt(now time.Time, days int) string {
	return now.AddDate(0, 0, days).Format(DateTimeLayout)
}
