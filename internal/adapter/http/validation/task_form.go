package validation

import (
	"errors"
	"strings"
	"time"

	"todo/internal/adapter/http/dto"
	"todo/internal/core/domain"
)

var (
	ErrEmptyTask     = errors.New("task text is empty")
	ErrMissingTaskID = errors.New("task id is missing")
)

// Layouts accepted for due_at; the first is what the date picker sends.
var dueAtLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	domain.DateTimeLayout,
}

func BuildNewTask(form dto.TaskForm) (domain.NewTask, error) {
	if form.Task == nil {
		return domain.NewTask{}, ErrEmptyTask
	}

	// Blank text is skipped; anything else is stored as submitted.
	text := *form.Task
	if strings.TrimSpace(text) == "" {
		return domain.NewTask{}, ErrEmptyTask
	}

	var dueAt string
	if form.DueAt != nil {
		dueAt = NormalizeDueAt(*form.DueAt)
	}

	return domain.NewTask{Text: text, DueAt: dueAt}, nil
}

func TaskID(form dto.TaskForm) (int64, error) {
	if form.ID == nil || *form.ID <= 0 {
		return 0, ErrMissingTaskID
	}
	return *form.ID, nil
}

// NormalizeDueAt rewrites recognised date layouts to domain.DateTimeLayout.
// Unrecognised text is kept as submitted.
func NormalizeDueAt(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, layout := range dueAtLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(domain.DateTimeLayout)
		}
	}
	return value
}
