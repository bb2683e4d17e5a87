package dto

import (
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
)

// CreateApplicationRequest is used internally by the Apply service method.
type CreateApplicationRequest struct {
	JobID    uuid.UUID `json:"job_id" validate:"required"`
	SeekerID uuid.UUID `json:"-"` // Set from user context
}

// ApplyRequest is the seeker-facing request to apply to a job.
type ApplyRequest struct {
	JobID    uuid.UUID `json:"job_id" validate:"required"`
	SeekerID uuid.UUID `json:"-"` // Set from user context
}

// TransitionRequest asks the status pipeline to move an application to a new
// status on behalf of an HR actor.
type TransitionRequest struct {
	ApplicationID uuid.UUID                `json:"-" validate:"required"` // From path
	Status        models.ApplicationStatus `json:"status" validate:"required"`
	ActorHrID     uuid.UUID                `json:"-"` // Set from user context
}

// ListApplicationsBySeekerRequest defines parameters for a seeker's own applications.
type ListApplicationsBySeekerRequest struct {
	SeekerID uuid.UUID `json:"-" validate:"required"` // Set from user context
	Limit    int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset   int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListApplicationsByJobRequest defines parameters for the HR view of a job's applicants.
type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for ownership check
	Limit  int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type ApplicationResponse struct {
	ID        uuid.UUID                `json:"id"`
	JobID     uuid.UUID                `json:"job_id"`
	SeekerID  uuid.UUID                `json:"seeker_id"`
	Status    models.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"applied_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}
