package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the handler surface for registration and login.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
}

// JobHandlerInterface defines the handler surface for job postings.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	ListMyJobs(c *gin.Context)
}

// ApplicationHandlerInterface defines the handler surface for applications and
// the status pipeline.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	UpdateStatus(c *gin.Context)
	ListMyApplications(c *gin.Context)
	ListApplicationsByJob(c *gin.Context)
}

// EventHandlerInterface defines the handler surface for interview events.
type EventHandlerInterface interface {
	CreateEvent(c *gin.Context)
	CancelEvent(c *gin.Context)
	CompleteEvent(c *gin.Context)
	UpcomingEvents(c *gin.Context)
}

// CalendarHandlerInterface defines the handler surface for the month view.
type CalendarHandlerInterface interface {
	GetCalendar(c *gin.Context)
}
