package handlers

import (
	"log"
	"net/http"
	"time"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/calendar"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// CalendarHandler renders the HR interview calendar month view.
type CalendarHandler struct {
	scheduler services.InterviewScheduler
	now       func() time.Time
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(scheduler services.InterviewScheduler) *CalendarHandler {
	return &CalendarHandler{
		scheduler: scheduler,
		now:       time.Now,
	}
}

// Compile-time check to ensure CalendarHandler implements CalendarHandlerInterface
var _ CalendarHandlerInterface = (*CalendarHandler)(nil)

// GetCalendar godoc
//	@Summary		Month calendar
//	@Description	Month grid of the HR account's scheduled events. Omitted month/year default to the current month; out-of-range months roll into the adjacent year, so month=0 is December of the previous year.
//	@Tags			calendar
//	@Produce		json
//	@Param			month	query		int						false	"Month (1-12, rolls over)"
//	@Param			year	query		int						false	"Year"
//	@Success		200		{object}	dto.CalendarResponse	"Month grid"
//	@Failure		400		{object}	map[string]string		"Invalid query parameters"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/calendar [get]
//	@Security		BearerAuth
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	today := h.now()
	year, month := req.Year, req.Month
	if year == 0 {
		year = today.Year()
	}
	if month == 0 && c.Query("month") == "" {
		month = int(today.Month())
	}
	year, month = calendar.Normalize(year, month)

	events, err := h.scheduler.MonthEvents(c.Request.Context(), actorID, year, month)
	if err != nil {
		log.Printf("GetCalendar: Error loading events for HR user %s (%d-%02d): %v", actorID, year, month, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load calendar"})
		return
	}

	grid := calendar.BuildGrid(year, month, today, events)
	c.JSON(http.StatusOK, MapGridToResponse(grid, events))
}
