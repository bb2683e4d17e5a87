package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title    string    `json:"title" validate:"required,min=3,max=200"`
	HrUserID uuid.UUID `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsByHrUserRequest defines parameters for listing an HR user's postings.
type ListJobsByHrUserRequest struct {
	HrUserID uuid.UUID `json:"-" validate:"required"` // Set from user context
	Limit    int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset   int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type JobResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	HrUserID  uuid.UUID `json:"hr_user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
