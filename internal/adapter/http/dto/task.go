package dto

import "todo/pkg/apierrors"

// TaskForm is the form payload shared by every mutating endpoint.
type TaskForm struct {
	ID    *int64  `form:"id"`
	Task  *string `form:"task"`
	DueAt *string `form:"due_at"`
}

type TaskItem struct {
	ID        int64
	Task      string
	CreatedAt string
	DueAt     string
	StartedAt string
	DoneAt    string
}

type Action struct {
	Path     string
	LabelKey string
}

type Column struct {
	Status   string
	TitleKey string
	Tasks    []TaskItem
	Actions  []Action
}

type BoardPage struct {
	Lang     string
	BasePath string
	Columns  []Column
}

type ErrorPage struct {
	Lang     string
	BasePath string
	Error    apierrors.JsonErr
}
