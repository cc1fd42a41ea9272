package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"post-app/pkg/cache"
	"post-app/pkg/config"
	"post-app/pkg/jwt"
	"post-app/pkg/logger"
	"post-app/pkg/middleware"
	"post-app/pkg/queue"
	notificationHTTP "post-app/services/notification/internal/controller/http"
	"post-app/services/notification/internal/entity"
	"post-app/services/notification/internal/repo/persistent"
	"post-app/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
)

const taskTimeout = 10 * time.Second

func NewRouter(cfg *config.Config, log *logger.Logger, notificationUseCase usecase.NotificationUseCase) *gin.Engine {
	jwtService := jwt.NewService(cfg.JWTSecret)
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	{
		api.GET("/notifications", notificationHandler.GetNotifications)
	}

	return r
}

// TaskHandler adapts the use case to the queue consumer. Invalid tasks are
// acknowledged and dropped; other failures are requeued.
func TaskHandler(notificationUseCase usecase.NotificationUseCase, log *logger.Logger) func(map[string]interface{}) error {
	return func(task map[string]interface{}) error {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		err := notificationUseCase.HandleTask(ctx, task)
		if errors.Is(err, entity.ErrInvalidTask) {
			log.Warn("[NOTIFICATION WORKER] Dropping task: %v", err)
			return nil
		}
		return err
	}
}

// Run consumes activity tasks into Redis inboxes and serves them over HTTP
// until SIGINT or SIGTERM. Redis and RabbitMQ are both required.
func Run(cfg *config.Config, log *logger.Logger) error {
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()

	notificationUseCase := usecase.NewNotificationUseCase(persistent.NewRedisInbox(redisClient), log)

	if err := queueClient.ConsumeNotificationTasks(TaskHandler(notificationUseCase, log)); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.NotificationPort,
		Handler: NewRouter(cfg, log, notificationUseCase),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Notification service starting on port %s", cfg.NotificationPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}
	log.Info("Shutting down notification service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Notification service exited")
	return nil
}
