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

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, title, hr_user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'open', NOW(), NOW())
		RETURNING id, title, hr_user_id, status, created_at, updated_at
	`

	row := r.db.QueryRow(ctx, query, uuid.New(), req.Title, req.HrUserID)

	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.HrUserID,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating job: foreign key violation (hr_user_id: %s): %v\n", req.HrUserID, err)
			return nil, fmt.Errorf("failed to create job: invalid HR user ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return &job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	query := `
		SELECT id, title, hr_user_id, status, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, req.ID)

	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.HrUserID,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}

	return &job, nil
}

// ListByHrUser retrieves jobs posted by a specific HR account.
func (r *JobRepo) ListByHrUser(ctx context.Context, req *dto.ListJobsByHrUserRequest) ([]models.Job, error) {
	query := `
		SELECT id, title, hr_user_id, status, created_at, updated_at
		FROM jobs
		WHERE hr_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, req.HrUserID, req.Limit, req.Offset)
	if err != nil {
		log.Printf("Error querying jobs by HR user %s: %v\n", req.HrUserID, err)
		return nil, fmt.Errorf("failed to query jobs by HR user: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs by HR user %s: %v\n", req.HrUserID, err)
		return nil, fmt.Errorf("failed to scan jobs by HR user: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}
