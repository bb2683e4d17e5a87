package routes

import (
	"job-portal-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers interview event routes and the calendar view.
func RegisterEventRoutes(
	rg *gin.RouterGroup,
	eventHandler handlers.EventHandlerInterface,
	calendarHandler handlers.CalendarHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	eventsGroup := rg.Group("/events")
	eventsGroup.Use(authMiddleware)
	{
		eventsGroup.POST("", eventHandler.CreateEvent)
		eventsGroup.GET("/upcoming", eventHandler.UpcomingEvents)
		eventsGroup.POST("/:id/cancel", eventHandler.CancelEvent)
		eventsGroup.POST("/:id/complete", eventHandler.CompleteEvent)
	}

	calendarGroup := rg.Group("/calendar")
	calendarGroup.Use(authMiddleware)
	{
		calendarGroup.GET("", calendarHandler.GetCalendar)
	}
}
