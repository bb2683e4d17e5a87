package dto

import (
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
)

// ScheduleEventRequest carries the fields the HR calendar form posts when
// creating an interview. Field names mirror the form inputs so form clients
// bind 1:1; JSON clients use the same names.
type ScheduleEventRequest struct {
	SeekerID      uuid.UUID        `json:"seeker_id" form:"seeker_id" validate:"required"`
	JobID         *uuid.UUID       `json:"job_id,omitempty" form:"job_id"`
	ApplicationID *uuid.UUID       `json:"application_id,omitempty" form:"application_id"`
	Title         string           `json:"event_title" form:"event_title" validate:"required,min=3,max=200"`
	EventType     models.EventType `json:"event_type" form:"event_type" validate:"required,oneof=interview screening technical hr_round final other"`
	Date          string           `json:"event_date" form:"event_date" validate:"required"` // "2006-01-02"
	Time          string           `json:"event_time" form:"event_time" validate:"required"` // "15:04"
	Duration      int              `json:"duration" form:"duration" validate:"required,gt=0"`
	Location      string           `json:"location" form:"location" validate:"max=255"`
	MeetingLink   string           `json:"meeting_link" form:"meeting_link" validate:"omitempty,url"`
	Notes         string           `json:"notes" form:"notes" validate:"max=2000"`
	HrUserID      uuid.UUID        `json:"-" form:"-"` // Set from user context
}

// CreateEventRecord is the repository-level shape after the service has parsed
// and validated the form fields.
type CreateEventRecord struct {
	HrUserID        uuid.UUID
	SeekerUserID    uuid.UUID
	ApplicationID   *uuid.UUID
	Title           string
	EventType       models.EventType
	Date            time.Time
	Time            string
	DurationMinutes int
	Location        string
	MeetingLink     string
	Description     string
}

// UpcomingEventsRequest defines parameters for the dashboard's upcoming list.
type UpcomingEventsRequest struct {
	HrUserID uuid.UUID `json:"-" validate:"required"` // Set from user context
	Limit    int       `form:"limit,default=5" validate:"omitempty,gt=0,lte=50"`
}

type EventResponse struct {
	ID              uuid.UUID          `json:"id"`
	HrUserID        uuid.UUID          `json:"hr_user_id"`
	SeekerUserID    uuid.UUID          `json:"seeker_user_id"`
	ApplicationID   *uuid.UUID         `json:"application_id,omitempty"`
	Title           string             `json:"event_title"`
	EventType       models.EventType   `json:"event_type"`
	Date            string             `json:"event_date"`
	Time            string             `json:"event_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Location        string             `json:"location,omitempty"`
	MeetingLink     string             `json:"meeting_link,omitempty"`
	Description     string             `json:"description,omitempty"`
	Status          models.EventStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
}
