package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todo/internal/adapter/db"
	httpadapter "todo/internal/adapter/http"
	"todo/internal/adapter/http/handlers"
	httpmiddleware "todo/internal/adapter/http/middleware"
	appservice "todo/internal/app/service"
	"todo/internal/config"
	"todo/pkg/translator"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageJa, translator.LanguageFr},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to sqlite", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close sqlite connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestID(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db), appservice.SystemClock{}, cfg.DefaultDueDays)
	healthHandler := handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion)
	taskHandler := handlers.NewTaskHandler(taskService, cfg.BasePath)
	httpadapter.RegisterRoutes(r, httpadapter.RouteOptions{
		BasePath:  cfg.BasePath,
		StaticDir: cfg.StaticDir,
	}, healthHandler, taskHandler)

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("base_path", cfg.BasePath),
			zap.Int("default_due_days", cfg.DefaultDueDays),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("shutting down server")
				return server.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	return exitCode
}
