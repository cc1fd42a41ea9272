package main

import (
	"post-app/pkg/config"
	"post-app/pkg/logger"
	notificationApp "post-app/services/notification/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Error("JWT_SECRET is not set; refusing to start with the default secret")
		panic("insecure JWT secret")
	}

	if err := notificationApp.Run(cfg, log); err != nil {
		log.Error("Notification service stopped: %v", err)
		panic(err)
	}
}
