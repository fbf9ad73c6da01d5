package domain

import (
	"fmt"
	"time"
)

type Transition string

const (
	TransitionStart Transition = "start"
	TransitionDone  Transition = "done"
	TransitionUndo  Transition = "undo"
	TransitionDoing Transition = "doing"
)

// TimestampField names the single timestamp a transition touches.
type TimestampField uint8

const (
	FieldStartedAt TimestampField = iota + 1
	FieldDoneAt
)

// StatusChange is the effect of a transition: the new status plus one
// timestamp that is either set (At non-nil) or cleared (At nil).
type StatusChange struct {
	Status TaskStatus
	Field  TimestampField
	At     *time.Time
}

// Apply computes the change for t. Transitions have no precondition on the
// current status, so the same change is valid from every state.
func (t Transition) Apply(now time.Time) (StatusChange, error) {
	switch t {
	case TransitionStart:
		return StatusChange{Status: TaskStatusInProgress, Field: FieldStartedAt, At: &now}, nil
	case TransitionDone:
		return StatusChange{Status: TaskStatusCompleted, Field: FieldDoneAt, At: &now}, nil
	case TransitionUndo:
		return StatusChange{Status: TaskStatusNotStarted, Field: FieldStartedAt}, nil
	case TransitionDoing:
		return StatusChange{Status: TaskStatusInProgress, Field: FieldDoneAt}, nil
	default:
		return StatusChange{}, fmt.Errorf("%w: %q", ErrUnknownTransition, string(t))
	}
}

func (c StatusChange) ApplyTo(task *Task) {
	task.Status = c.Status

	var at *time.Time
	if c.At != nil {
		value := *c.At
		at = &value
	}

	switch c.Field {
	case FieldStartedAt:
		task.StartedAt = at
	case FieldDoneAt:
		task.DoneAt = at
	}
}
