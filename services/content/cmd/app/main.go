package main

import (
	"post-app/pkg/config"
	"post-app/pkg/logger"
	contentApp "post-app/services/content/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Content Service API
// @version         1.0
// @description     Users, posts, likes and comments for the post app
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	if err := contentApp.Run(cfg, log); err != nil {
		log.Error("Content service stopped: %v", err)
		panic(err)
	}
}
