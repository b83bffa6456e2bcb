package services

import (
	"context"
	"fmt"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
)

// messageServiceImpl implements the MessageSvc interface
type messageServiceImpl struct {
	BaseService
	messageRepo portsrepo.MessageRepositoryFacade
}

// NewMessageService creates a new message service
func NewMessageService(repo portsrepo.MessageRepositoryFacade) portssvc.MessageSvc {
	return &messageServiceImpl{messageRepo: repo}
}

var _ portssvc.MessageSvc = (*messageServiceImpl)(nil)

func (s *messageServiceImpl) ListThreads(ctx context.Context) ([]domain.MessageThread, int, error) {
	threads, err := s.messageRepo.ListThreads(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list threads: %w", err)
	}
	totalUnread := 0
	for _, t := range threads {
		totalUnread += t.UnreadCount
	}
	return threads, totalUnread, nil
}

func (s *messageServiceImpl) GetThreadMessages(ctx context.Context, threadID string) ([]domain.Message, error) {
	if _, err := s.messageRepo.FindThreadByID(ctx, threadID); err != nil {
		return nil, fmt.Errorf("thread %s: %w", threadID, err)
	}
	messages, err := s.messageRepo.ListMessagesByThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for thread %s: %w", threadID, err)
	}
	return messages, nil
}

func (s *messageServiceImpl) MarkThreadRead(ctx context.Context, threadID string) error {
	if _, err := s.messageRepo.FindThreadByID(ctx, threadID); err != nil {
		return fmt.Errorf("thread %s: %w", threadID, err)
	}
	return s.messageRepo.MarkThreadRead(ctx, threadID)
}
