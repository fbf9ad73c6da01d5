package handlers

import (
	"net/http"

	"todo/internal/adapter/http/dto"
	"todo/internal/adapter/http/mapper"
	"todo/internal/adapter/http/middleware"
	"todo/internal/adapter/http/validation"
	"todo/internal/adapter/http/view"
	"todo/internal/core/domain"
	"todo/internal/core/ports"
	"todo/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskHandler serves the board page and its form posts. Every post ends in a
// redirect to the board; bad input is dropped without feedback.
type TaskHandler struct {
	taskService ports.TaskService
	basePath    string
}

func NewTaskHandler(taskService ports.TaskService, basePath string) *TaskHandler {
	if basePath == "" {
		basePath = "/"
	}
	return &TaskHandler{taskService: taskService, basePath: basePath}
}

func (h *TaskHandler) Board(c *gin.Context) {
	lang := middleware.GetLang(c)

	board, err := h.taskService.ListBoard(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.HTML(http.StatusOK, view.BoardTemplate, mapper.ToBoardPage(board, lang, h.basePath))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		zap.L().Debug("ignoring malformed create form", zap.Error(err))
		h.redirect(c)
		return
	}

	task, err := validation.BuildNewTask(form)
	if err != nil {
		h.redirect(c)
		return
	}

	id, err := h.taskService.CreateTask(c.Request.Context(), task)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask)
		return
	}

	zap.L().Debug("task created", zap.Int64("task_id", id))
	h.redirect(c)
}

func (h *TaskHandler) StartTask(c *gin.Context) {
	h.applyTransition(c, domain.TransitionStart)
}

func (h *TaskHandler) DoneTask(c *gin.Context) {
	h.applyTransition(c, domain.TransitionDone)
}

func (h *TaskHandler) UndoTask(c *gin.Context) {
	h.applyTransition(c, domain.TransitionUndo)
}

func (h *TaskHandler) DoingTask(c *gin.Context) {
	h.applyTransition(c, domain.TransitionDoing)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := h.bindTaskID(c)
	if !ok {
		h.redirect(c)
		return
	}

	if _, err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		zap.L().Error("failed to delete task", zap.Int64("task_id", id), zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, apierrors.MsgFailDeleteTask)
		return
	}

	h.redirect(c)
}

func (h *TaskHandler) applyTransition(c *gin.Context, transition domain.Transition) {
	id, ok := h.bindTaskID(c)
	if !ok {
		h.redirect(c)
		return
	}

	updated, err := h.taskService.ApplyTransition(c.Request.Context(), id, transition)
	if err != nil {
		zap.L().Error("failed to update task status",
			zap.Int64("task_id", id),
			zap.String("transition", string(transition)),
			zap.Error(err),
		)
		h.renderError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateTask)
		return
	}
	if !updated {
		zap.L().Debug("transition matched no task", zap.Int64("task_id", id), zap.String("transition", string(transition)))
	}

	h.redirect(c)
}

func (h *TaskHandler) bindTaskID(c *gin.Context) (int64, bool) {
	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		zap.L().Debug("ignoring malformed task form", zap.Error(err))
		return 0, false
	}

	id, err := validation.TaskID(form)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) redirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.basePath)
}

func (h *TaskHandler) renderError(c *gin.Context, code int, msgKey string) {
	lang := middleware.GetLang(c)
	c.HTML(code, view.ErrorTemplate, dto.ErrorPage{
		Lang:     lang,
		BasePath: h.basePath,
		Error:    apierrors.CreateError(code, msgKey, lang),
	})
}
