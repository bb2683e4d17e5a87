package handlers

import (
	"fmt"

	"job-portal-api/internal/calendar"
	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:        job.ID,
		Title:     job.Title,
		HrUserID:  job.HrUserID,
		Status:    job.Status,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		SeekerID:  app.SeekerID,
		Status:    app.Status,
		AppliedAt: app.AppliedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

// MapEventModelToResponse converts a models.Event to a dto.EventResponse
func MapEventModelToResponse(ev *models.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:              ev.ID,
		HrUserID:        ev.HrUserID,
		SeekerUserID:    ev.SeekerUserID,
		ApplicationID:   ev.ApplicationID,
		Title:           ev.Title,
		EventType:       ev.EventType,
		Date:            ev.Date.Format("2006-01-02"),
		Time:            ev.Time,
		DurationMinutes: ev.DurationMinutes,
		Location:        ev.Location,
		MeetingLink:     ev.MeetingLink,
		Description:     ev.Description,
		Status:          ev.Status,
		CreatedAt:       ev.CreatedAt,
	}
}

// MapEventModelsToResponses converts a slice of events.
func MapEventModelsToResponses(events []models.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, MapEventModelToResponse(&events[i]))
	}
	return out
}

// MapGridToResponse converts a calendar.Grid plus the month's events into the
// calendar view payload, applying the per-cell display truncation.
func MapGridToResponse(grid calendar.Grid, events []models.Event) dto.CalendarResponse {
	prevYear, prevMonth := calendar.Normalize(grid.Year, grid.Month-1)
	nextYear, nextMonth := calendar.Normalize(grid.Year, grid.Month+1)

	cells := make([]dto.CalendarCellResponse, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		resp := dto.CalendarCellResponse{
			Day:      cell.Day,
			IsToday:  cell.IsToday,
			Events:   MapEventModelsToResponses(cell.Visible()),
			Overflow: cell.Overflow(),
		}
		if !cell.Blank() {
			resp.Date = cell.Date.Format("2006-01-02")
		}
		cells = append(cells, resp)
	}

	return dto.CalendarResponse{
		Year:      grid.Year,
		Month:     grid.Month,
		MonthName: monthName(grid.Month),
		PrevMonth: prevMonth,
		PrevYear:  prevYear,
		NextMonth: nextMonth,
		NextYear:  nextYear,
		Cells:     cells,
		Events:    MapEventModelsToResponses(events),
	}
}

func monthName(month int) string {
	names := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}
