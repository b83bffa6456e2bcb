package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/fieldhq/field_service_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// estimateHandler handles HTTP requests related to estimates.
type estimateHandler struct {
	estimateService portssvc.EstimateSvcFacade
}

// newEstimateHandler creates a new estimateHandler.
func newEstimateHandler(es portssvc.EstimateSvcFacade) *estimateHandler {
	return &estimateHandler{
		estimateService: es,
	}
}

// registerEstimateRoutes registers routes related to estimates.
func registerEstimateRoutes(rg *gin.RouterGroup, estimateService portssvc.EstimateSvcFacade) {
	h := newEstimateHandler(estimateService)

	estimates := rg.Group("/estimates")
	{
		estimates.POST("", h.createEstimate)
		estimates.GET("", h.listEstimates)
		estimates.GET("/:estimateID", h.getEstimateByID)
		estimates.PUT("/:estimateID/status", h.updateEstimateStatus)
		estimates.POST("/:estimateID/convert", h.convertToJob)
	}
}

// createEstimate godoc
// @Summary Create a new estimate
// @Description Creates a draft estimate, computing subtotal and total from its line items
// @Tags estimates
// @Accept  json
// @Produce  json
// @Param   estimate body dto.CreateEstimateRequest true "Estimate details"
// @Success 201 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to create estimate"
// @Router /estimates [post]
func (h *estimateHandler) createEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEstimate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create estimate", slog.String("client_id", req.ClientID))

	createdEstimate, err := h.estimateService.CreateEstimate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Client not found for new estimate", slog.String("client_id", req.ClientID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating estimate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create estimate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create estimate"})
		}
		return
	}

	logger.Info("Estimate created successfully", slog.String("estimate_id", createdEstimate.EstimateID))
	c.JSON(http.StatusCreated, dto.ToEstimateResponse(createdEstimate))
}

// listEstimates godoc
// @Summary List estimates
// @Description Retrieves a page of estimates in catalog order
// @Tags estimates
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListEstimatesResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to list estimates"
// @Router /estimates [get]
func (h *estimateHandler) listEstimates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	estimates, nextToken, err := h.estimateService.ListEstimates(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list estimates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list estimates"})
		return
	}

	logger.Info("Estimates listed successfully", slog.Int("count", len(estimates)))
	c.JSON(http.StatusOK, dto.ListEstimatesResponse{Estimates: dto.ToEstimateResponses(estimates), NextToken: nextToken})
}

// getEstimateByID godoc
// @Summary Get an estimate by ID
// @Description Retrieves details for a specific estimate
// @Tags estimates
// @Produce  json
// @Param   estimateID path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve estimate"
// @Router /estimates/{estimateID} [get]
func (h *estimateHandler) getEstimateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	logger = logger.With(slog.String("estimate_id", estimateID))
	logger.Info("Received request to get estimate by ID")

	estimate, err := h.estimateService.GetEstimateByID(c.Request.Context(), estimateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Estimate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
		} else {
			logger.Error("Failed to get estimate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve estimate"})
		}
		return
	}

	logger.Info("Estimate retrieved successfully")
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

// updateEstimateStatus godoc
// @Summary Update an estimate's status
// @Description Moves an estimate through draft, sent, approved or rejected
// @Tags estimates
// @Accept  json
// @Produce  json
// @Param   estimateID path string true "Estimate ID"
// @Param   status body dto.UpdateEstimateStatusRequest true "Target status"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 409 {object} map[string]string "Status change not allowed"
// @Failure 500 {object} map[string]string "Failed to update estimate"
// @Router /estimates/{estimateID}/status [put]
func (h *estimateHandler) updateEstimateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	var req dto.UpdateEstimateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEstimateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("estimate_id", estimateID), slog.String("target_status", req.Status))
	logger.Info("Received request to update estimate status")

	estimate, err := h.estimateService.UpdateEstimateStatus(c.Request.Context(), estimateID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Estimate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
		} else if errors.Is(err, apperrors.ErrInvalidTransition) {
			logger.Warn("Status change not allowed", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating estimate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update estimate status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update estimate"})
		}
		return
	}

	logger.Info("Estimate status updated successfully", slog.String("status", string(estimate.Status)))
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

// convertToJob godoc
// @Summary Convert an approved estimate into a scheduled job
// @Description Creates a scheduled job carrying the estimate's client, title and line items
// @Tags estimates
// @Accept  json
// @Produce  json
// @Param   estimateID path string true "Estimate ID"
// @Param   schedule body dto.ConvertEstimateRequest true "Scheduling details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 409 {object} map[string]string "Estimate is not approved"
// @Failure 500 {object} map[string]string "Failed to convert estimate"
// @Router /estimates/{estimateID}/convert [post]
func (h *estimateHandler) convertToJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	var req dto.ConvertEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertToJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("estimate_id", estimateID))
	logger.Info("Received request to convert estimate to job")

	job, err := h.estimateService.ConvertToJob(c.Request.Context(), estimateID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Estimate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
		} else if errors.Is(err, apperrors.ErrInvalidTransition) {
			logger.Warn("Estimate is not approved", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting estimate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert estimate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert estimate"})
		}
		return
	}

	logger.Info("Estimate converted successfully", slog.String("job_id", job.JobID))
	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}
