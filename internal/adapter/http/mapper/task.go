package mapper

import (
	"time"

	"todo/internal/adapter/http/dto"
	"todo/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:        task.ID,
		Task:      task.Text,
		CreatedAt: formatTime(&task.CreatedAt),
		DueAt:     task.DueAt,
		StartedAt: formatTime(task.StartedAt),
		DoneAt:    formatTime(task.DoneAt),
	}
}

// ToBoardPage lays the board out as one column per status, each carrying the
// actions its tasks accept.
func ToBoardPage(board domain.Board, lang, basePath string) dto.BoardPage {
	return dto.BoardPage{
		Lang:     lang,
		BasePath: basePath,
		Columns: []dto.Column{
			{
				Status:   domain.TaskStatusNotStarted.String(),
				TitleKey: "columnNotStarted",
				Tasks:    ToTaskItems(board.NotStarted),
				Actions:  actions(basePath, domain.TransitionStart),
			},
			{
				Status:   domain.TaskStatusInProgress.String(),
				TitleKey: "columnInProgress",
				Tasks:    ToTaskItems(board.InProgress),
				Actions:  actions(basePath, domain.TransitionDone, domain.TransitionUndo),
			},
			{
				Status:   domain.TaskStatusCompleted.String(),
				TitleKey: "columnCompleted",
				Tasks:    ToTaskItems(board.Completed),
				Actions:  actions(basePath, domain.TransitionDoing),
			},
		},
	}
}

var transitionLabels = map[domain.Transition]string{
	domain.TransitionStart: "buttonStart",
	domain.TransitionDone:  "buttonDone",
	domain.TransitionUndo:  "buttonUndo",
	domain.TransitionDoing: "buttonDoing",
}

// actions returns one button per transition followed by delete.
func actions(basePath string, transitions ...domain.Transition) []dto.Action {
	out := make([]dto.Action, 0, len(transitions)+1)
	for _, tr := range transitions {
		out = append(out, dto.Action{Path: basePath + string(tr), LabelKey: transitionLabels[tr]})
	}
	return append(out, dto.Action{Path: basePath + "delete", LabelKey: "buttonDelete"})
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(domain.DateTimeLayout)
}
