package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/fieldhq/field_service_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the KPI dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/todos", h.getTodos)
	}
}

// getSummary godoc
// @Summary Get the KPI summary for a date
// @Description Computes jobs, revenue, sales, payments collected, estimates and undone-job counts for the given reference date (defaults to today)
// @Tags dashboard
// @Produce  json
// @Param   date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dateStr := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := domain.ParseCalendarDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("date", date.String()))
	logger.Info("Received request for dashboard summary")

	summary, err := h.dashboardService.Summary(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	logger.Info("Dashboard summary computed successfully", slog.Int("jobs", summary.Jobs))
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// getTodos godoc
// @Summary Get the dashboard to-do entries
// @Description Derives actionable entries (unconverted estimates, outstanding balances, jobs in the field) from the catalog
// @Tags dashboard
// @Produce  json
// @Success 200 {array} dto.TodoItemResponse
// @Failure 500 {object} map[string]string "Failed to compute to-dos"
// @Router /dashboard/todos [get]
func (h *dashboardHandler) getTodos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for dashboard to-dos")

	todos, err := h.dashboardService.Todos(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard to-dos", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute to-dos"})
		return
	}

	logger.Info("Dashboard to-dos computed successfully", slog.Int("count", len(todos)))
	c.JSON(http.StatusOK, dto.ToTodoItemResponses(todos))
}
