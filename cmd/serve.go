package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todolist.com/todolist/internal/cache"
	config "todolist.com/todolist/internal/configs"
	httpapi "todolist.com/todolist/internal/http"
	repository "todolist.com/todolist/internal/repositories"
	"todolist.com/todolist/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task HTTP API over the tasks table",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnvFile()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		taskRepo := newTaskStore(cfg)

		taskCache := cache.TaskListCache(cache.NopTaskCache{})
		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				log.Printf("redis unavailable, task list cache disabled: %v", err)
			} else {
				defer redisClient.Close()
				taskCache = cache.NewRedisTaskCache(redisClient)
			}
		}

		taskService := services.NewTaskService(
			taskRepo,
			taskCache,
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
		)

		e := httpapi.NewServer()
		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

// newTaskStore connects to the database. A failed connection is logged and
// the server still starts; every request then fails with that error.
func newTaskStore(cfg config.Config) repository.TaskStore {
	db, err := config.NewDatabaseClient(cfg.DatabaseDSN, cfg.AutoMigrate)
	if err != nil {
		log.Printf("error connecting to the database: %v", err)
		return repository.NewUnavailableRepository(err)
	}

	log.Printf("connected to database %s", cfg.DatabaseDSN)
	return repository.NewTaskRepository(db)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
