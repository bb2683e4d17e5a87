package services

import (
	"context"
	"fmt"
	"log"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"
)

// TransitionValidator decides whether an application may move from one status
// to another. Swapping implementations changes policy without touching any
// call site.
type TransitionValidator interface {
	Validate(from, to models.ApplicationStatus) error
}

// PermissiveTransitions matches the portal's historical behavior: any defined
// status is reachable from any current status, including backwards moves out
// of hired/rejected. Only enum membership is enforced.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Validate(from, to models.ApplicationStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	return nil
}

// StrictTransitions enforces the forward pipeline DAG:
// applied → viewed → shortlisted → interview → offered → hired|rejected,
// with withdrawn reachable from any non-terminal status. Not the default.
type StrictTransitions struct{}

var strictNext = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationStatusApplied:     {models.ApplicationStatusViewed, models.ApplicationStatusShortlisted, models.ApplicationStatusRejected},
	models.ApplicationStatusViewed:      {models.ApplicationStatusShortlisted, models.ApplicationStatusRejected},
	models.ApplicationStatusShortlisted: {models.ApplicationStatusInterview, models.ApplicationStatusRejected},
	models.ApplicationStatusInterview:   {models.ApplicationStatusOffered, models.ApplicationStatusRejected},
	models.ApplicationStatusOffered:     {models.ApplicationStatusHired, models.ApplicationStatusRejected},
}

func (StrictTransitions) Validate(from, to models.ApplicationStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if to == models.ApplicationStatusWithdrawn {
		if from.IsTerminal() {
			return fmt.Errorf("%w: cannot withdraw from terminal status %q", ErrInvalidStatus, from)
		}
		return nil
	}
	for _, allowed := range strictNext[from] {
		if to == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q -> %q not allowed", ErrInvalidStatus, from, to)
}

type pipelineService struct {
	appRepo   storage.ApplicationRepository
	jobRepo   storage.JobRepository
	validator TransitionValidator
}

// NewStatusPipeline creates the application status state machine. A nil
// validator falls back to PermissiveTransitions.
func NewStatusPipeline(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, validator TransitionValidator) StatusPipeline {
	if validator == nil {
		validator = PermissiveTransitions{}
	}
	return &pipelineService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		validator: validator,
	}
}

// Transition moves an application to a new status on behalf of an HR actor.
// The actor must own the job the application targets; an ownership failure is
// a hard error, not a silent no-op. On success updated_at is refreshed.
// Linked events are untouched: the application and event state machines are
// coupled only by the one-directional trigger in the scheduler.
func (s *pipelineService) Transition(ctx context.Context, req *dto.TransitionRequest) (*models.Application, error) {
	// 1. Fetch the Application
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	// 2. Fetch the Job for authorization
	jobReq := dto.GetJobByIDRequest{ID: application.JobID}
	job, err := s.jobRepo.GetByID(ctx, &jobReq)
	if err != nil {
		// Should not happen if the application exists, but handle defensively
		log.Printf("Transition: Error fetching job %s for application %s: %v", application.JobID, req.ApplicationID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	// 3. Ownership Check: Only the HR account that owns the job may transition
	if job.HrUserID != req.ActorHrID {
		log.Printf("Transition: Forbidden attempt by HR user %s on application %s (job owner: %s)", req.ActorHrID, req.ApplicationID, job.HrUserID)
		return nil, ErrOwnership
	}

	// 4. Status Check through the pluggable validator
	if err := s.validator.Validate(application.Status, req.Status); err != nil {
		log.Printf("Transition: Rejected %s -> %s for application %s: %v", application.Status, req.Status, req.ApplicationID, err)
		return nil, err
	}

	// 5. Persist the new status (single atomic row update)
	updatedApp, err := s.appRepo.UpdateStatus(ctx, req.ApplicationID, req.Status)
	if err != nil {
		log.Printf("Transition: Error updating status for application %s: %v", req.ApplicationID, err)
		return nil, mapRepoError(err, "updating application status")
	}

	log.Printf("Application %s transitioned %s -> %s by HR user %s", updatedApp.ID, application.Status, updatedApp.Status, req.ActorHrID)
	return updatedApp, nil
}
