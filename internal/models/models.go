package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusViewed      ApplicationStatus = "viewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists every defined status, in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusViewed,
	ApplicationStatusShortlisted,
	ApplicationStatusInterview,
	ApplicationStatusOffered,
	ApplicationStatusHired,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

// IsValid reports whether s is one of the defined statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusViewed, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusOffered, ApplicationStatusHired,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether s ends the pipeline.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Event Status Enum ---
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// IsTerminal reports whether the event can no longer change.
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusCompleted || s == EventStatusCancelled
}

// Scan implements the sql.Scanner interface for EventStatus
func (s *EventStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan EventStatus: value is not string or []byte")
		}
	}
	v := EventStatus(strVal)
	switch v {
	case EventStatusScheduled, EventStatusCompleted, EventStatusCancelled:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid EventStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for EventStatus
func (s EventStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Event Type Enum ---
type EventType string

const (
	EventTypeInterview EventType = "interview"
	EventTypeScreening EventType = "screening"
	EventTypeTechnical EventType = "technical"
	EventTypeHRRound   EventType = "hr_round"
	EventTypeFinal     EventType = "final"
	EventTypeOther     EventType = "other"
)

// Scan implements the sql.Scanner interface for EventType
func (t *EventType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan EventType: value is not string or []byte")
		}
	}
	v := EventType(strVal)
	switch v {
	case EventTypeInterview, EventTypeScreening, EventTypeTechnical,
		EventTypeHRRound, EventTypeFinal, EventTypeOther:
		*t = v
		return nil
	default:
		return fmt.Errorf("invalid EventType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for EventType
func (t EventType) Value() (driver.Value, error) {
	return string(t), nil
}

// --- User Role Enum ---
type UserRole string

const (
	UserRoleHR     UserRole = "hr"
	UserRoleSeeker UserRole = "seeker"
)

// User represents an account in the system (HR recruiter or job seeker).
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Job represents a posting owned by an HR account. The owning account is the
// only one allowed to mutate the status of applications to this job.
type Job struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	HrUserID  uuid.UUID `json:"hr_user_id" db:"hr_user_id"`
	Status    string    `json:"status" db:"status"` // open / closed
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Application represents a seeker's submission to a job posting.
// Invariant: UpdatedAt >= AppliedAt; UpdatedAt is refreshed on every status change.
type Application struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	JobID     uuid.UUID         `json:"job_id" db:"job_id"`
	SeekerID  uuid.UUID         `json:"seeker_id" db:"seeker_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	AppliedAt time.Time         `json:"applied_at" db:"applied_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// Event represents an interview-like appointment between an HR user and a
// seeker, optionally linked to an Application. Events are never hard-deleted;
// completed and cancelled are soft-terminal states.
type Event struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	HrUserID        uuid.UUID   `json:"hr_user_id" db:"hr_user_id"`
	SeekerUserID    uuid.UUID   `json:"seeker_user_id" db:"seeker_user_id"`
	ApplicationID   *uuid.UUID  `json:"application_id,omitempty" db:"application_id"` // Pointer for NULLable UUID
	Title           string      `json:"event_title" db:"event_title"`
	EventType       EventType   `json:"event_type" db:"event_type"`
	Date            time.Time   `json:"event_date" db:"event_date"` // Date only, midnight UTC
	Time            string      `json:"event_time" db:"event_time"` // "15:04" wall clock
	DurationMinutes int         `json:"duration_minutes" db:"duration_minutes"`
	Location        string      `json:"location" db:"location"`
	MeetingLink     string      `json:"meeting_link" db:"meeting_link"`
	Description     string      `json:"description" db:"description"`
	Status          EventStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}
