package services

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// MessageSvc exposes the inbox surface.
type MessageSvc interface {
	// ListThreads retrieves all threads with their total unread count.
	ListThreads(ctx context.Context) ([]domain.MessageThread, int, error)

	// GetThreadMessages retrieves a thread's messages in timestamp order.
	GetThreadMessages(ctx context.Context, threadID string) ([]domain.Message, error)

	// MarkThreadRead marks every message in a thread as read.
	MarkThreadRead(ctx context.Context, threadID string) error
}
