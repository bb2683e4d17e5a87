package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventHandler holds dependencies for interview event operations.
type EventHandler struct {
	scheduler services.InterviewScheduler
	validator *validator.Validate
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(scheduler services.InterviewScheduler, validate *validator.Validate) *EventHandler {
	return &EventHandler{
		scheduler: scheduler,
		validator: validate,
	}
}

// Compile-time check to ensure EventHandler implements EventHandlerInterface
var _ EventHandlerInterface = (*EventHandler)(nil)

// CreateEvent godoc
//	@Summary		Schedule an interview event
//	@Description	Creates a scheduled event. When linked to an application owned by the actor, the application moves to 'interview'.
//	@Tags			events
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			event	body		dto.ScheduleEventRequest	true	"Event details"
//	@Success		201		{object}	dto.EventResponse			"Event scheduled"
//	@Failure		400		{object}	map[string]string			"Validation failure or past/malformed date"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		409		{object}	map[string]string			"Invalid seeker or application reference"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/events [post]
//	@Security		BearerAuth
func (h *EventHandler) CreateEvent(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ScheduleEventRequest
	// ShouldBind handles both JSON and the calendar form post.
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.HrUserID = actorID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": FormatValidationErrors(err)})
		return
	}

	event, err := h.scheduler.Schedule(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrSchedule) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("CreateEvent: Error scheduling event for HR user %s: %v", actorID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule event"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapEventModelToResponse(event))
}

// CancelEvent godoc
//	@Summary		Cancel an event
//	@Description	Marks a scheduled event cancelled. Cancelling an already terminal event is a no-op.
//	@Tags			events
//	@Produce		json
//	@Param			id	path		string				true	"Event ID"	Format(uuid)
//	@Success		200	{object}	dto.EventResponse	"Event state after the call"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Actor does not own the event"
//	@Failure		404	{object}	map[string]string	"Event not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/events/{id}/cancel [post]
//	@Security		BearerAuth
func (h *EventHandler) CancelEvent(c *gin.Context) {
	h.terminate(c, h.scheduler.Cancel)
}

// CompleteEvent godoc
//	@Summary		Complete an event
//	@Description	Marks a scheduled event completed. Completing an already terminal event is a no-op.
//	@Tags			events
//	@Produce		json
//	@Param			id	path		string				true	"Event ID"	Format(uuid)
//	@Success		200	{object}	dto.EventResponse	"Event state after the call"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Actor does not own the event"
//	@Failure		404	{object}	map[string]string	"Event not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/events/{id}/complete [post]
//	@Security		BearerAuth
func (h *EventHandler) CompleteEvent(c *gin.Context) {
	h.terminate(c, h.scheduler.Complete)
}

func (h *EventHandler) terminate(c *gin.Context, op func(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error)) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	event, err := op(c.Request.Context(), eventID, actorID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else if errors.Is(err, services.ErrOwnership) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this event"})
		} else {
			log.Printf("terminate: Error updating event %s: %v", eventID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, MapEventModelToResponse(event))
}

// UpcomingEvents godoc
//	@Summary		List upcoming events
//	@Description	Next scheduled events for the authenticated HR account, soonest first.
//	@Tags			events
//	@Produce		json
//	@Param			limit	query		int					false	"Max events"	default(5)
//	@Success		200		{array}		dto.EventResponse	"Events"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/events/upcoming [get]
//	@Security		BearerAuth
func (h *EventHandler) UpcomingEvents(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpcomingEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	req.HrUserID = actorID

	events, err := h.scheduler.Upcoming(c.Request.Context(), &req)
	if err != nil {
		log.Printf("UpcomingEvents: Error listing upcoming events for HR user %s: %v", actorID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list upcoming events"})
		return
	}

	c.JSON(http.StatusOK, MapEventModelsToResponses(events))
}
