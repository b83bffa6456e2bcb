package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/fieldhq/field_service_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// jobHandler handles HTTP requests related to jobs.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

// newJobHandler creates a new jobHandler.
func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{
		jobService: js,
	}
}

// registerJobRoutes registers routes related to jobs.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade) {
	h := newJobHandler(jobService)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:jobID", h.getJobByID)
		jobs.POST("/:jobID/status", h.advanceJobStatus)
		jobs.POST("/:jobID/payments", h.recordPayment)
	}
}

// createJob godoc
// @Summary Create a new job
// @Description Creates a job in status scheduled or estimate, assigning its ID, job number and initial timeline event
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 422 {object} map[string]string "Total does not reconcile with line items"
// @Failure 500 {object} map[string]string "Failed to create job"
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create job", slog.String("client_id", req.ClientID), slog.String("status", req.Status))

	createdJob, err := h.jobService.CreateJob(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Client not found for new job", slog.String("client_id", req.ClientID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else if errors.Is(err, apperrors.ErrInvariantViolation) {
			logger.Warn("Job totals do not reconcile", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating job", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create job in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		}
		return
	}

	logger.Info("Job created successfully", slog.String("job_id", createdJob.JobID), slog.String("job_number", createdJob.JobNumber))
	c.JSON(http.StatusCreated, dto.ToJobResponse(createdJob))
}

// listJobs godoc
// @Summary List jobs
// @Description Retrieves a page of jobs in catalog order, or every job scheduled on a date when ?date=YYYY-MM-DD is given
// @Tags jobs
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Param   date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := domain.ParseCalendarDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		jobs, err := h.jobService.ListJobsOnDate(c.Request.Context(), date)
		if err != nil {
			logger.Error("Failed to list jobs on date", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
			return
		}
		logger.Info("Jobs on date listed successfully", slog.String("date", date.String()), slog.Int("count", len(jobs)))
		c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: dto.ToJobResponses(jobs)})
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, nextToken, err := h.jobService.ListJobs(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list jobs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	logger.Info("Jobs listed successfully", slog.Int("count", len(jobs)))
	c.JSON(http.StatusOK, dto.ListJobsResponse{Jobs: dto.ToJobResponses(jobs), NextToken: nextToken})
}

// getJobByID godoc
// @Summary Get a job by ID
// @Description Retrieves a job with its line items, payments and timeline
// @Tags jobs
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Router /jobs/{jobID} [get]
func (h *jobHandler) getJobByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	logger = logger.With(slog.String("job_id", jobID))
	logger.Info("Received request to get job by ID")

	job, err := h.jobService.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Job not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to get job from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	logger.Info("Job retrieved successfully")
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// advanceJobStatus godoc
// @Summary Advance a job's lifecycle status
// @Description Moves a job one lifecycle step, appending exactly one timeline event
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   transition body dto.AdvanceJobStatusRequest true "Target status"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 409 {object} map[string]string "Transition not allowed from current status"
// @Failure 500 {object} map[string]string "Failed to advance job"
// @Router /jobs/{jobID}/status [post]
func (h *jobHandler) advanceJobStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	var req dto.AdvanceJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdvanceJobStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("job_id", jobID), slog.String("target_status", req.Status))
	logger.Info("Received request to advance job status")

	job, err := h.jobService.AdvanceJobStatus(c.Request.Context(), jobID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Job not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, apperrors.ErrInvalidTransition) {
			logger.Warn("Transition not allowed", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Concurrent update detected")
			c.JSON(http.StatusConflict, gin.H{"error": "Job was modified concurrently, retry"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error advancing job", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to advance job status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance job"})
		}
		return
	}

	logger.Info("Job status advanced successfully", slog.String("status", string(job.Status)))
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// recordPayment godoc
// @Summary Record a payment against a job
// @Description Appends a payment and recomputes paid, balance and payment status; settles the named invoice in step
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 422 {object} map[string]string "Payment exceeds outstanding balance"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Router /jobs/{jobID}/payments [post]
func (h *jobHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("job_id", jobID))
	logger.Info("Received request to record payment", slog.String("amount", req.Amount.String()), slog.String("method", req.Method))

	job, err := h.jobService.RecordPayment(c.Request.Context(), jobID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Job not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, apperrors.ErrInvariantViolation) {
			logger.Warn("Payment rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Concurrent update detected")
			c.JSON(http.StatusConflict, gin.H{"error": "Job was modified concurrently, retry"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded successfully", slog.String("payment_status", string(job.PaymentStatus)))
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}
