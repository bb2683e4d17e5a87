package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create saves a new application in the initial 'applied' status.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, seeker_id, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, job_id, seeker_id, status, applied_at, updated_at
	`

	row := r.db.QueryRow(ctx, query, uuid.New(), req.JobID, req.SeekerID, models.ApplicationStatusApplied)

	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.SeekerID,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation
				log.Printf("Error creating application: foreign key violation (job: %s, seeker: %s): %v\n", req.JobID, req.SeekerID, err)
				return nil, fmt.Errorf("failed to create application: invalid job or seeker ID: %w", storage.ErrConflict)
			case "23505": // unique_violation (one application per seeker per job)
				log.Printf("Error creating application: duplicate for job %s, seeker %s\n", req.JobID, req.SeekerID)
				return nil, fmt.Errorf("failed to create application: already applied: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return &app, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `
		SELECT id, job_id, seeker_id, status, applied_at, updated_at
		FROM applications
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)

	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.SeekerID,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return &app, nil
}

// ListBySeeker retrieves applications submitted by a specific seeker.
func (r *ApplicationRepo) ListBySeeker(ctx context.Context, req *dto.ListApplicationsBySeekerRequest) ([]models.Application, error) {
	query := `
		SELECT id, job_id, seeker_id, status, applied_at, updated_at
		FROM applications
		WHERE seeker_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, req.SeekerID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error querying applications by seeker %s: %v\n", req.SeekerID, err)
		return nil, fmt.Errorf("failed to query applications by seeker: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by seeker %s: %v\n", req.SeekerID, err)
		return nil, fmt.Errorf("failed to scan applications by seeker: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// ListByJob retrieves applications submitted to a specific job.
func (r *ApplicationRepo) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error) {
	query := `
		SELECT id, job_id, seeker_id, status, applied_at, updated_at
		FROM applications
		WHERE job_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, req.JobID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error querying applications by job %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by job %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to scan applications by job: %w", err)
	}

	if apps == nil {
		apps = []models.Application{}
	}

	return apps, nil
}

// UpdateStatus persists a new status and refreshes updated_at in one atomic write.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, job_id, seeker_id, status, applied_at, updated_at
	`

	row := r.db.QueryRow(ctx, query, status, id)

	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.SeekerID,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	return &app, nil
}
