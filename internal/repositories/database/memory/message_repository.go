package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
)

// MessageRepository is an in-memory store for threads and their messages.
type MessageRepository struct {
	mu       sync.RWMutex
	threads  map[string]domain.MessageThread
	messages map[string][]domain.Message // threadID -> ascending by timestamp
}

// NewMessageRepository creates an empty in-memory message repository.
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		threads:  make(map[string]domain.MessageThread),
		messages: make(map[string][]domain.Message),
	}
}

var _ portsrepo.MessageRepositoryFacade = (*MessageRepository)(nil)

// SaveThread persists a new thread.
func (r *MessageRepository) SaveThread(_ context.Context, thread domain.MessageThread) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.threads[thread.ThreadID]; exists {
		return fmt.Errorf("thread %s: %w", thread.ThreadID, apperrors.ErrDuplicate)
	}
	r.threads[thread.ThreadID] = thread
	return nil
}

// SaveMessage appends a message to its thread and refreshes the thread summary.
func (r *MessageRepository) SaveMessage(_ context.Context, message domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	thread, ok := r.threads[message.ThreadID]
	if !ok {
		return fmt.Errorf("thread %s: %w", message.ThreadID, apperrors.ErrNotFound)
	}
	r.messages[message.ThreadID] = append(r.messages[message.ThreadID], message)

	thread.LastMessage = message.Content
	thread.LastMessageTime = message.Timestamp
	if !message.Read {
		thread.UnreadCount++
	}
	r.threads[message.ThreadID] = thread
	return nil
}

// FindThreadByID retrieves a thread by its unique identifier.
func (r *MessageRepository) FindThreadByID(_ context.Context, threadID string) (*domain.MessageThread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	thread, ok := r.threads[threadID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &thread, nil
}

// ListThreads retrieves all threads, most recent activity first.
func (r *MessageRepository) ListThreads(_ context.Context) ([]domain.MessageThread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	threads := make([]domain.MessageThread, 0, len(r.threads))
	for _, t := range r.threads {
		threads = append(threads, t)
	}
	sort.Slice(threads, func(i, j int) bool {
		return threads[i].LastMessageTime.After(threads[j].LastMessageTime)
	})
	return threads, nil
}

// ListMessagesByThread retrieves a thread's messages in ascending timestamp order.
func (r *MessageRepository) ListMessagesByThread(_ context.Context, threadID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.messages[threadID]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// MarkThreadRead marks every message in a thread as read.
func (r *MessageRepository) MarkThreadRead(_ context.Context, threadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	thread, ok := r.threads[threadID]
	if !ok {
		return fmt.Errorf("thread %s: %w", threadID, apperrors.ErrNotFound)
	}
	msgs := r.messages[threadID]
	for i := range msgs {
		msgs[i].Read = true
	}
	thread.UnreadCount = 0
	r.threads[threadID] = thread
	return nil
}
