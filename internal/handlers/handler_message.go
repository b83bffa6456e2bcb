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

// messageHandler handles HTTP requests for the inbox.
type messageHandler struct {
	messageService portssvc.MessageSvc
}

// newMessageHandler creates a new messageHandler.
func newMessageHandler(ms portssvc.MessageSvc) *messageHandler {
	return &messageHandler{
		messageService: ms,
	}
}

// registerMessageRoutes registers routes related to the inbox.
func registerMessageRoutes(rg *gin.RouterGroup, messageService portssvc.MessageSvc) {
	h := newMessageHandler(messageService)

	threads := rg.Group("/threads")
	{
		threads.GET("", h.listThreads)
		threads.GET("/:threadID/messages", h.getThreadMessages)
		threads.POST("/:threadID/read", h.markThreadRead)
	}
}

// listThreads godoc
// @Summary List inbox threads
// @Description Retrieves all threads, most recent first, with the total unread count
// @Tags messages
// @Produce  json
// @Success 200 {object} dto.ListThreadsResponse
// @Failure 500 {object} map[string]string "Failed to list threads"
// @Router /threads [get]
func (h *messageHandler) listThreads(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list threads")

	threads, totalUnread, err := h.messageService.ListThreads(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list threads from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list threads"})
		return
	}

	resp := dto.ListThreadsResponse{TotalUnread: totalUnread}
	for i := range threads {
		resp.Threads = append(resp.Threads, dto.ToMessageThreadResponse(&threads[i]))
	}

	logger.Info("Threads listed successfully", slog.Int("count", len(threads)), slog.Int("unread", totalUnread))
	c.JSON(http.StatusOK, resp)
}

// getThreadMessages godoc
// @Summary Get a thread's messages
// @Description Retrieves a thread's messages in timestamp order
// @Tags messages
// @Produce  json
// @Param   threadID path string true "Thread ID"
// @Success 200 {array} dto.MessageResponse
// @Failure 404 {object} map[string]string "Thread not found"
// @Failure 500 {object} map[string]string "Failed to retrieve messages"
// @Router /threads/{threadID}/messages [get]
func (h *messageHandler) getThreadMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	threadID := c.Param("threadID")

	logger = logger.With(slog.String("thread_id", threadID))
	logger.Info("Received request to get thread messages")

	messages, err := h.messageService.GetThreadMessages(c.Request.Context(), threadID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Thread not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		} else {
			logger.Error("Failed to get thread messages from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		}
		return
	}

	logger.Info("Thread messages retrieved successfully", slog.Int("count", len(messages)))
	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

// markThreadRead godoc
// @Summary Mark a thread as read
// @Description Marks every message in the thread as read and zeroes its unread count
// @Tags messages
// @Produce  json
// @Param   threadID path string true "Thread ID"
// @Success 204 "Thread marked read"
// @Failure 404 {object} map[string]string "Thread not found"
// @Failure 500 {object} map[string]string "Failed to mark thread read"
// @Router /threads/{threadID}/read [post]
func (h *messageHandler) markThreadRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	threadID := c.Param("threadID")

	logger = logger.With(slog.String("thread_id", threadID))
	logger.Info("Received request to mark thread read")

	if err := h.messageService.MarkThreadRead(c.Request.Context(), threadID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Thread not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Thread not found"})
		} else {
			logger.Error("Failed to mark thread read in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark thread read"})
		}
		return
	}

	logger.Info("Thread marked read successfully")
	c.Status(http.StatusNoContent)
}
