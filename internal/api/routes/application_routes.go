package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers application and pipeline routes.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applicationsGroup := rg.Group("/applications")
	applicationsGroup.Use(authMiddleware)
	{
		applicationsGroup.POST("", applicationHandler.Apply)
		applicationsGroup.GET("/my", applicationHandler.ListMyApplications)
		applicationsGroup.PATCH("/:application_id/status", applicationHandler.UpdateStatus)
	}
}
