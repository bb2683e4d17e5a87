package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application and pipeline operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	pipeline  services.StatusPipeline
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, pipeline services.StatusPipeline, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		pipeline:  pipeline,
		validator: validate,
	}
}

// Compile-time check to ensure ApplicationHandler implements ApplicationHandlerInterface
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)

// Apply godoc
//	@Summary		Apply to a job
//	@Description	Creates an application in the initial 'applied' status for the authenticated seeker.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.ApplyRequest			true	"Job to apply to"
//	@Success		201			{object}	dto.ApplicationResponse		"Application created"
//	@Failure		400			{object}	map[string]string			"Validation failure"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		404			{object}	map[string]string			"Job not found"
//	@Failure		409			{object}	map[string]string			"Already applied or job closed"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/applications [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.SeekerID = actorID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("Apply: Error applying to job %s: %v", req.JobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapApplicationModelToResponse(application))
}

// UpdateStatus godoc
//	@Summary		Update an application's status
//	@Description	Moves an application through the pipeline. Only the HR account owning the job may do this.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			application_id	path	string					true	"Application ID"	Format(uuid)
//	@Param			status	body		dto.TransitionRequest		true	"New status"
//	@Success		200		{object}	dto.ApplicationResponse		"Status updated"
//	@Failure		400		{object}	map[string]string			"Invalid ID or status"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Actor does not own the job"
//	@Failure		404		{object}	map[string]string			"Application not found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{application_id}/status [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("application_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.ApplicationID = appID
	req.ActorHrID = actorID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": FormatValidationErrors(err)})
		return
	}

	application, err := h.pipeline.Transition(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrOwnership) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own the job for this application"})
		} else if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpdateStatus: Error transitioning application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}

// ListMyApplications godoc
//	@Summary		List my applications
//	@Description	Lists applications submitted by the authenticated seeker.
//	@Tags			applications
//	@Produce		json
//	@Param			limit	query		int							false	"Page size"		default(10)
//	@Param			offset	query		int							false	"Page offset"	default(0)
//	@Success		200		{array}		dto.ApplicationResponse		"Applications"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/my [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListApplicationsBySeekerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	req.SeekerID = actorID

	applications, err := h.service.ListBySeeker(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for seeker %s: %v", actorID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		resp = append(resp, MapApplicationModelToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// ListApplicationsByJob godoc
//	@Summary		List a job's applications
//	@Description	HR view of all applications to one of the account's postings.
//	@Tags			applications
//	@Produce		json
//	@Param			job_id	path		string						true	"Job ID"	Format(uuid)
//	@Param			limit	query		int							false	"Page size"		default(10)
//	@Param			offset	query		int							false	"Page offset"	default(0)
//	@Success		200		{array}		dto.ApplicationResponse		"Applications"
//	@Failure		400		{object}	map[string]string			"Invalid ID format"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Actor does not own the job"
//	@Failure		404		{object}	map[string]string			"Job not found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/jobs/{job_id}/applications [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListApplicationsByJob(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ListApplicationsByJobRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	req.JobID = jobID
	req.UserID = actorID

	applications, err := h.service.ListByJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrOwnership) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this job"})
		} else {
			log.Printf("ListApplicationsByJob: Error listing applications for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		}
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		resp = append(resp, MapApplicationModelToResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, resp)
}
