package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskhub/taskhub-api/internal/auth"
	"github.com/taskhub/taskhub-api/internal/config"
	"github.com/taskhub/taskhub-api/internal/container"
	"github.com/taskhub/taskhub-api/internal/database"
	"github.com/taskhub/taskhub-api/internal/handlers"
	"github.com/taskhub/taskhub-api/internal/logging"
	"github.com/taskhub/taskhub-api/internal/middleware"
	"github.com/taskhub/taskhub-api/internal/registry"
	"github.com/taskhub/taskhub-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	tx := database.NewTxManager(db)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	// Register the full service graph, then boot. Cross-service references
	// resolve lazily through the container after this point.
	c := container.New()
	registry.Wire(c, registry.Deps{
		DB:     db,
		Log:    logger,
		Tx:     tx,
		Hasher: hasher,
		Tokens: tokens,
	})
	c.Boot()

	userSvc, err := container.Resolve[*services.UserService](c, container.KeyUser)
	if err != nil {
		logger.Fatal("failed to resolve user service", zap.Error(err))
	}
	groupSvc, err := container.Resolve[*services.GroupService](c, container.KeyGroup)
	if err != nil {
		logger.Fatal("failed to resolve group service", zap.Error(err))
	}
	taskSvc, err := container.Resolve[*services.TaskService](c, container.KeyTask)
	if err != nil {
		logger.Fatal("failed to resolve task service", zap.Error(err))
	}

	authHandler := handlers.NewAuthHandler(userSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	groupHandler := handlers.NewGroupHandler(groupSvc)
	taskHandler := handlers.NewTaskHandler(taskSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	api.Use(middleware.Transaction(tx))
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(tokens))
		{
			protected.GET("/admin/users", userHandler.List)
			protected.GET("/user/profile", userHandler.Profile)

			groups := protected.Group("/user/groups")
			{
				groups.POST("", groupHandler.Create)
				groups.GET("", groupHandler.List)
				groups.GET("/:id", groupHandler.Get)
				groups.PUT("/:id", groupHandler.Update)
				groups.DELETE("/:id", groupHandler.Delete)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskHandler.List)
				tasks.POST("", taskHandler.Create)
				tasks.GET("/:id", taskHandler.Get)
				tasks.PATCH("/:id", taskHandler.Update)
				tasks.DELETE("/:id", taskHandler.Delete)
			}
		}
	}

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddr), zap.String("environment", cfg.Environment))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
