package services

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService handles account registration and login.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
}

// JobService handles job postings (the ownership anchors for the pipeline).
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListJobsByHrUser(ctx context.Context, req *dto.ListJobsByHrUserRequest) ([]models.Job, error)
}

// ApplicationService handles the seeker side: applying and reading back.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListBySeeker(ctx context.Context, req *dto.ListApplicationsBySeekerRequest) ([]models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error)
}

// StatusPipeline is the state machine governing an application's status.
type StatusPipeline interface {
	Transition(ctx context.Context, req *dto.TransitionRequest) (*models.Application, error)
}

// InterviewScheduler manages the interview event lifecycle and the calendar
// read side. Scheduling an interview against an owned application triggers a
// StatusPipeline transition to 'interview' (best effort, never rolled back).
type InterviewScheduler interface {
	Schedule(ctx context.Context, req *dto.ScheduleEventRequest) (*models.Event, error)
	Cancel(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error)
	Complete(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error)
	Upcoming(ctx context.Context, req *dto.UpcomingEventsRequest) ([]models.Event, error)
	MonthEvents(ctx context.Context, hrUserID uuid.UUID, year, month int) ([]models.Event, error)
}
