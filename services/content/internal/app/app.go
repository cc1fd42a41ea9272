package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"post-app/pkg/cache"
	"post-app/pkg/config"
	"post-app/pkg/database"
	"post-app/pkg/jwt"
	"post-app/pkg/logger"
	"post-app/pkg/middleware"
	"post-app/pkg/queue"
	"post-app/pkg/s3"
	contentHTTP "post-app/services/content/internal/controller/http"
	"post-app/services/content/internal/repo"
	"post-app/services/content/internal/repo/document"
	"post-app/services/content/internal/repo/memory"
	"post-app/services/content/internal/repo/persistent"
	"post-app/services/content/internal/repo/webapi"
	"post-app/services/content/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "post-app/services/content/docs" // Swagger docs
)

// Dependencies are the external collaborators of the content service.
// Redis and Notifier are optional.
type Dependencies struct {
	Repos    repo.Repositories
	Assets   repo.AssetStore
	Notifier usecase.NotificationPublisher
	Redis    *redis.Client
}

func NewRouter(cfg *config.Config, log *logger.Logger, deps Dependencies) *gin.Engine {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize use cases
	contentUseCase := usecase.NewContentUseCase(deps.Repos, deps.Assets, deps.Notifier, cfg.AssetNamespace, log)
	authUseCase := usecase.NewAuthUseCase(deps.Repos.Users, jwtService, log)

	// Initialize HTTP handlers
	authHandler := contentHTTP.NewAuthHandler(authUseCase)
	userHandler := contentHTTP.NewUserHandler(contentUseCase, log)
	postHandler := contentHTTP.NewPostHandler(contentUseCase, log)
	commentHandler := contentHTTP.NewCommentHandler(contentUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	if deps.Redis != nil {
		api.Use(middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitPerMinute, time.Minute))
	}
	{
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/me", userHandler.GetMe)
		api.PATCH("/users/me", userHandler.UpdateMe)

		api.POST("/posts", postHandler.CreatePost)
		api.PATCH("/posts/:postId", postHandler.UpdatePost)
		api.DELETE("/posts/:postId", postHandler.DeletePost)
		api.POST("/posts/:postId/like", postHandler.ToggleLike)

		api.POST("/posts/:postId/comments", commentHandler.CreateComment)
		api.PATCH("/comments/:commentId", commentHandler.UpdateComment)
	}

	return r
}

// Run connects the configured backends, serves HTTP and blocks until
// SIGINT or SIGTERM.
func Run(cfg *config.Config, log *logger.Logger) error {
	repos, closeStore, err := NewRepositories(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize asset store: %w", err)
	}

	deps := Dependencies{
		Repos:  repos,
		Assets: webapi.NewAssetStore(s3Client),
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to Redis: %v (continuing without rate limiting)", err)
	} else {
		deps.Redis = redisClient
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis: %v", err)
			}
		}()
	}

	if cfg.RabbitMQHost != "" {
		queueClient, err := queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without notifications)", err)
		} else {
			deps.Notifier = queueClient
			defer queueClient.Close()
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: NewRouter(cfg, log, deps),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Content service starting on port %s (datastore: %s)", cfg.ServerPort, cfg.DatastoreDriver)
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
	log.Info("Shutting down content service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Content service exited")
	return nil
}

// NewRepositories opens the datastore selected by cfg.DatastoreDriver. The
// returned func releases its connections.
func NewRepositories(cfg *config.Config, log *logger.Logger) (repo.Repositories, func(), error) {
	switch cfg.DatastoreDriver {
	case config.DriverPostgres:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return repo.Repositories{}, nil, err
		}
		closeDB := func() {
			sqlDB, err := db.DB()
			if err != nil {
				return
			}
			if err := sqlDB.Close(); err != nil {
				log.Error("Error closing database: %v", err)
			}
		}
		return persistent.NewRepositories(db), closeDB, nil

	case config.DriverMongo:
		client, err := database.NewMongoClient(cfg)
		if err != nil {
			return repo.Repositories{}, nil, err
		}
		db := client.Database(cfg.MongoDatabase)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := document.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return repo.Repositories{}, nil, fmt.Errorf("failed to create mongo indexes: %w", err)
		}

		closeClient := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("Error closing MongoDB: %v", err)
			}
		}
		return document.NewRepositories(db), closeClient, nil

	case config.DriverMemory:
		log.Warn("Using in-memory datastore; data is lost on restart")
		return memory.NewRepositories(), func() {}, nil

	default:
		return repo.Repositories{}, nil, fmt.Errorf("unknown datastore driver %q", cfg.DatastoreDriver)
	}
}
