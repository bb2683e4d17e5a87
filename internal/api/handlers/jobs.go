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

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// Compile-time check to ensure JobHandler implements JobHandlerInterface
var _ JobHandlerInterface = (*JobHandler)(nil)

// CreateJob godoc
//	@Summary		Create a job posting
//	@Description	Creates a posting owned by the authenticated HR account.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Posting details"
//	@Success		201	{object}	dto.JobResponse			"Posting created"
//	@Failure		400	{object}	map[string]string		"Validation failure"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.HrUserID = actorID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("CreateJob: Error creating job for HR user %s: %v", actorID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// GetJobByID godoc
//	@Summary		Get a job posting
//	@Description	Retrieves a single posting by ID.
//	@Tags			jobs
//	@Produce		json
//	@Param			job_id	path	string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobResponse		"Posting"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{job_id} [get]
//	@Security		BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("GetJobByID: Error fetching job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// ListMyJobs godoc
//	@Summary		List my job postings
//	@Description	Lists postings owned by the authenticated HR account.
//	@Tags			jobs
//	@Produce		json
//	@Param			limit	query		int					false	"Page size"		default(10)
//	@Param			offset	query		int					false	"Page offset"	default(0)
//	@Success		200		{array}		dto.JobResponse		"Postings"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/my [get]
//	@Security		BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	actorID, err := middleware.GetActorIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListJobsByHrUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}
	req.HrUserID = actorID

	jobs, err := h.service.ListJobsByHrUser(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyJobs: Error listing jobs for HR user %s: %v", actorID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}
