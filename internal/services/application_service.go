package services

import (
	"context"
	"fmt"
	"log"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
	db      *pgxpool.Pool
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, db *pgxpool.Pool) ApplicationService {
	return &applicationService{
		appRepo: appRepo,
		jobRepo: jobRepo,
		db:      db,
	}
}

// Apply creates a new application for a seeker against an open job. The job
// check and the insert run in one transaction so the posting cannot close
// between the two.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Apply: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	txAppRepo := s.appRepo.WithTx(tx)
	txJobRepo := s.jobRepo.WithTx(tx)

	// 1. Fetch the Job to check it is open
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	job, err := txJobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}
	if job.Status != "open" {
		log.Printf("Apply: Attempt to apply to non-open job %s (status: %s)", req.JobID, job.Status)
		return nil, fmt.Errorf("%w: job is not accepting applications", ErrConflict)
	}

	// 2. Create the application (the unique index rejects duplicates)
	createReq := dto.CreateApplicationRequest{
		JobID:    req.JobID,
		SeekerID: req.SeekerID,
	}
	application, err := txAppRepo.Create(ctx, &createReq)
	if err != nil {
		log.Printf("Apply: Error creating application in repo: %v", err)
		return nil, mapRepoError(err, "creating application")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Apply: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing application: %w", err)
	}

	log.Printf("Application %s created for job %s by seeker %s", application.ID, req.JobID, req.SeekerID)
	return application, nil
}

// ListBySeeker retrieves applications submitted by the requesting seeker.
func (s *applicationService) ListBySeeker(ctx context.Context, req *dto.ListApplicationsBySeekerRequest) ([]models.Application, error) {
	applications, err := s.appRepo.ListBySeeker(ctx, req)
	if err != nil {
		log.Printf("ListBySeeker: Error listing applications for seeker %s: %v", req.SeekerID, err)
		return nil, mapRepoError(err, "listing applications by seeker")
	}
	return applications, nil
}

// ListByJob retrieves applications for a specific job, checking that the
// requesting HR account owns the posting.
func (s *applicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error) {
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", req.JobID))
	}

	if job.HrUserID != req.UserID {
		log.Printf("ListByJob: Forbidden attempt by user %s to list applications for job %s owned by %s", req.UserID, req.JobID, job.HrUserID)
		return nil, ErrOwnership
	}

	applications, err := s.appRepo.ListByJob(ctx, req)
	if err != nil {
		log.Printf("ListByJob: Error listing applications for job %s: %v", req.JobID, err)
		return nil, mapRepoError(err, "listing applications by job")
	}
	return applications, nil
}
