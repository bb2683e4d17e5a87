package routes

import (
	"log"

	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/app"
	"job-portal-api/internal/services"
	"job-portal-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	appRepo := postgres.NewApplicationRepo(app.DBPool)
	eventRepo := postgres.NewEventRepo(app.DBPool)

	// --- Services ---
	userService := services.NewUserService(userRepo, app.Config.JWT.Secret, app.Config.JWT.Expiration)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, app.DBPool)
	pipeline := services.NewStatusPipeline(appRepo, jobRepo, nil) // nil = permissive transitions
	scheduler := services.NewInterviewScheduler(eventRepo, appRepo, pipeline, app.RedisClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, pipeline, app.Validator)
	eventHandler := handlers.NewEventHandler(scheduler, app.Validator)
	calendarHandler := handlers.NewCalendarHandler(scheduler)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler)
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterEventRoutes(apiV1, eventHandler, calendarHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
