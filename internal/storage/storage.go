package storage

import (
	"context"
	"time"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListByHrUser(ctx context.Context, req *dto.ListJobsByHrUserRequest) ([]models.Job, error)
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListBySeeker(ctx context.Context, req *dto.ListApplicationsBySeekerRequest) ([]models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error)
	// UpdateStatus persists the new status and refreshes updated_at.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}

// EventRepository defines the interface for interview event data operations.
type EventRepository interface {
	Create(ctx context.Context, req *dto.CreateEventRecord) (*models.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	// QueryByRange returns the HR user's scheduled events with a date inside
	// [start, end], ordered by date then time.
	QueryByRange(ctx context.Context, hrUserID uuid.UUID, start, end time.Time) ([]models.Event, error)
	// QueryUpcoming returns the HR user's scheduled events dated today or later,
	// ordered by date then time, bounded by limit.
	QueryUpcoming(ctx context.Context, hrUserID uuid.UUID, today time.Time, limit int) ([]models.Event, error)
	// UpdateStatus moves a still-scheduled event into a terminal status and
	// reports how many rows changed (0 when the event is already terminal).
	// Events never join multi-row transactions: the event and application
	// state machines are coupled only by a best-effort trigger.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EventStatus) (int64, error)
}
