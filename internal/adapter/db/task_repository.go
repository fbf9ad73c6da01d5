package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"todo/internal/core/domain"
	"todo/internal/core/ports"
)

const (
	listTasksByStatusQuery = `
SELECT id, task, status, created_at, due_at, started_at, done_at
FROM tasks
WHERE status = ?
ORDER BY id;
`
	getTaskByIDQuery = `
SELECT id, task, status, created_at, due_at, started_at, done_at
FROM tasks
WHERE id = ?;
`
	insertTaskQuery = `INSERT INTO tasks (task, status, created_at, due_at) VALUES (?, ?, ?, ?)`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
)

// Each transition touches exactly one timestamp column.
var updateStatusQueries = map[domain.TimestampField]string{
	domain.FieldStartedAt: `UPDATE tasks SET status = ?, started_at = ? WHERE id = ?`,
	domain.FieldDoneAt:    `UPDATE tasks SET status = ?, done_at = ? WHERE id = ?`,
}

// Status codes as stored in the tasks.status column.
const (
	statusCodeNotStarted = 0
	statusCodeInProgress = 1
	statusCodeCompleted  = 9
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID        int64          `db:"id"`
	Task      string         `db:"task"`
	Status    int            `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	DueAt     sql.NullString `db:"due_at"`
	StartedAt sql.NullTime   `db:"started_at"`
	DoneAt    sql.NullTime   `db:"done_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	code, err := statusToCode(status)
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByStatusQuery, code); err != nil {
		return nil, queryError("list tasks by status", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, queryError("list tasks by status", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (int64, error) {
	var dueAt sql.NullString
	if input.DueAt != "" {
		dueAt = sql.NullString{String: input.DueAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, insertTaskQuery, input.Text, statusCodeNotStarted, input.CreatedAt, dueAt)
	if err != nil {
		return 0, queryError("create task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, queryError("create task", err)
	}

	return id, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, queryError("get task", err)
	}

	task, err := mapTaskRowToDomainTask(row)
	if err != nil {
		return domain.Task{}, queryError("get task", err)
	}
	return task, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) (bool, error) {
	query, ok := updateStatusQueries[change.Field]
	if !ok {
		return false, fmt.Errorf("update task status: unknown timestamp field %d", change.Field)
	}

	code, err := statusToCode(change.Status)
	if err != nil {
		return false, err
	}

	var at sql.NullTime
	if change.At != nil {
		at = sql.NullTime{Time: *change.At, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query, code, at, id)
	if err != nil {
		return false, queryError("update task status", err)
	}

	return rowsAffected(result, "update task status")
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return false, queryError("delete task", err)
	}

	return rowsAffected(result, "delete task")
}

func rowsAffected(result sql.Result, op string) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, queryError(op, err)
	}
	return n > 0, nil
}

func queryError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreQuery, err)
}

func statusToCode(status domain.TaskStatus) (int, error) {
	switch status {
	case domain.TaskStatusNotStarted:
		return statusCodeNotStarted, nil
	case domain.TaskStatusInProgress:
		return statusCodeInProgress, nil
	case domain.TaskStatusCompleted:
		return statusCodeCompleted, nil
	default:
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}
}

func statusFromCode(code int) (domain.TaskStatus, error) {
	switch code {
	case statusCodeNotStarted:
		return domain.TaskStatusNotStarted, nil
	case statusCodeInProgress:
		return domain.TaskStatusInProgress, nil
	case statusCodeCompleted:
		return domain.TaskStatusCompleted, nil
	default:
		return 0, fmt.Errorf("%w: code %d", domain.ErrInvalidStatus, code)
	}
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	status, err := statusFromCode(row.Status)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        row.ID,
		Text:      row.Task,
		Status:    status,
		CreatedAt: row.CreatedAt,
		DueAt:     row.DueAt.String,
	}

	if row.StartedAt.Valid {
		value := row.StartedAt.Time
		task.StartedAt = &value
	}

	if row.DoneAt.Valid {
		value := row.DoneAt.Time
		task.DoneAt = &value
	}

	return task, nil
}
