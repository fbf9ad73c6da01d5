package http

import (
	"todo/internal/adapter/http/handlers"
	"todo/internal/adapter/http/middleware"
	"todo/internal/adapter/http/view"

	"github.com/gin-gonic/gin"
)

type RouteOptions struct {
	BasePath  string
	StaticDir string
}

func RegisterRoutes(r *gin.Engine, opts RouteOptions, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	basePath := opts.BasePath
	if basePath == "" {
		basePath = "/"
	}

	r.SetHTMLTemplate(view.Templates())

	app := r.Group(basePath)
	app.Use(middleware.LanguageMiddleware())
	{
		app.GET("/", taskHandler.Board)
		app.POST("/create", taskHandler.CreateTask)
		app.POST("/start", taskHandler.StartTask)
		app.POST("/done", taskHandler.DoneTask)
		app.POST("/undo", taskHandler.UndoTask)
		app.POST("/doing", taskHandler.DoingTask)
		app.POST("/delete", taskHandler.DeleteTask)
		app.GET("/health", healthHandler.CheckHealth)
		app.GET("/health/report", healthHandler.CheckHealthReport)
	}

	if opts.StaticDir != "" {
		app.Static("/static", opts.StaticDir)
	}
}
