package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		jobsGroup.POST("", jobHandler.CreateJob)
		jobsGroup.GET("/my", jobHandler.ListMyJobs)
		jobsGroup.GET("/:job_id", jobHandler.GetJobByID)
		// Applications for a specific job (HR view, ownership enforced in the service)
		jobsGroup.GET("/:job_id/applications", applicationHandler.ListApplicationsByJob)
	}
}
