package repositories

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// MessageReader defines read operations for message threads
type MessageReader interface {
	// FindThreadByID retrieves a specific thread by its unique identifier.
	FindThreadByID(ctx context.Context, threadID string) (*domain.MessageThread, error)

	// ListThreads retrieves all threads, most recent activity first.
	ListThreads(ctx context.Context) ([]domain.MessageThread, error)

	// ListMessagesByThread retrieves a thread's messages in ascending
	// timestamp order.
	ListMessagesByThread(ctx context.Context, threadID string) ([]domain.Message, error)
}

// MessageWriter defines write operations for message threads
type MessageWriter interface {
	// SaveThread persists a new thread.
	SaveThread(ctx context.Context, thread domain.MessageThread) error

	// SaveMessage appends a message to its thread and refreshes the
	// thread summary.
	SaveMessage(ctx context.Context, message domain.Message) error

	// MarkThreadRead marks every message in a thread as read.
	MarkThreadRead(ctx context.Context, threadID string) error
}

// MessageRepositoryFacade combines all message-related repository interfaces
type MessageRepositoryFacade interface {
	MessageReader
	MessageWriter
}
