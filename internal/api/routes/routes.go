package routes

import (
	"turnos-backend/internal/api/handlers"
	"turnos-backend/internal/api/middleware"
	"turnos-backend/internal/auth"
	"turnos-backend/internal/config"
	"turnos-backend/internal/mailer"
	"turnos-backend/internal/repository"
	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	return setup(db, cfg, mailer.NewSMTPMailer(cfg))
}

// SetupRoutesWithMailer is SetupRoutes with an injected mail sender,
// useful when exercising the reminder endpoint without an SMTP server.
func SetupRoutesWithMailer(db *gorm.DB, cfg *config.Config, m mailer.Mailer) *gin.Engine {
	return setup(db, cfg, m)
}

func setup(db *gorm.DB, cfg *config.Config, m mailer.Mailer) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	exhibitorRepo := repository.NewExhibitorRepository(db)
	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	configRepo := repository.NewNotificationConfigRepository(db)
	ledgerRepo := repository.NewSentNotificationRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, validator)
	placeService := service.NewPlaceService(placeRepo, validator)
	exhibitorService := service.NewExhibitorService(exhibitorRepo, validator)
	userService := service.NewUserService(userRepo, validator)
	shiftService := service.NewShiftService(shiftRepo, placeRepo, userRepo, validator)
	notificationService := service.NewNotificationService(
		shiftRepo, ledgerRepo, configRepo, m,
		cfg.NotifyTolerance(), cfg.SendTimeout(),
	)

	// Initialize auth middleware
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret, cfg.SchedulerToken)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	placeHandler := handlers.NewPlaceHandler(placeService)
	exhibitorHandler := handlers.NewExhibitorHandler(exhibitorService)
	userHandler := handlers.NewUserHandler(userService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Scheduler route, authenticated by the shared token rather than a JWT
	router.POST("/api/v1/notifications/run", authMiddleware.RequireSchedulerToken(), notificationHandler.Run)

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Team routes (superAdmin only)
		teams := v1.Group("/teams", authMiddleware.RequireSuperAdmin())
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Place routes
		places := v1.Group("/places")
		{
			places.GET("", placeHandler.ListPlaces)
			places.GET("/:id", placeHandler.GetPlace)
			places.POST("", authMiddleware.RequireAdmin(), placeHandler.CreatePlace)
			places.PUT("/:id", authMiddleware.RequireAdmin(), placeHandler.UpdatePlace)
			places.DELETE("/:id", authMiddleware.RequireAdmin(), placeHandler.DeletePlace)
		}

		// Exhibitor routes
		exhibitors := v1.Group("/exhibitors")
		{
			exhibitors.GET("", exhibitorHandler.ListExhibitors)
			exhibitors.GET("/:id", exhibitorHandler.GetExhibitor)
			exhibitors.POST("", authMiddleware.RequireAdmin(), exhibitorHandler.CreateExhibitor)
			exhibitors.DELETE("/:id", authMiddleware.RequireAdmin(), exhibitorHandler.DeleteExhibitor)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", authMiddleware.RequireAdmin(), userHandler.CreateUser)
			users.DELETE("/:id", authMiddleware.RequireAdmin(), userHandler.DeleteUser)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("", authMiddleware.RequireAdmin(), shiftHandler.CreateShift)
			shifts.POST("/generate", authMiddleware.RequireAdmin(), shiftHandler.GenerateShifts)
			shifts.DELETE("/:id", authMiddleware.RequireAdmin(), shiftHandler.DeleteShift)
			shifts.POST("/:id/volunteers/:userId", shiftHandler.AssignUser)
			shifts.DELETE("/:id/volunteers/:userId", shiftHandler.UnassignUser)
			shifts.POST("/:id/exhibitors/:exhibitorId", authMiddleware.RequireAdmin(), shiftHandler.AssignExhibitor)
			shifts.DELETE("/:id/exhibitors/:exhibitorId", authMiddleware.RequireAdmin(), shiftHandler.UnassignExhibitor)
		}

		// Reminder settings of the authenticated user
		notifications := v1.Group("/notifications")
		{
			notifications.GET("/config", notificationHandler.GetConfig)
			notifications.PUT("/config", notificationHandler.UpdateConfig)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
