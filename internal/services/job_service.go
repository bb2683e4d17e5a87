package services

import (
	"context"
	"fmt"
	"log"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"
)

type jobService struct {
	repo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(repo storage.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return job, nil
}

func (s *jobService) ListJobsByHrUser(ctx context.Context, req *dto.ListJobsByHrUserRequest) ([]models.Job, error) {
	jobs, err := s.repo.ListByHrUser(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs for HR user %s: %v", req.HrUserID, err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}
