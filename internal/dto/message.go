package dto

import (
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// MessageThreadResponse defines the data returned for an inbox thread.
type MessageThreadResponse struct {
	ThreadID        string    `json:"threadID"`
	Title           string    `json:"title"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
	Participants    []string  `json:"participants"`
}

// MessageResponse defines the data returned for a single message.
type MessageResponse struct {
	MessageID  string    `json:"messageID"`
	ThreadID   string    `json:"threadID"`
	SenderID   string    `json:"senderID"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// ListThreadsResponse is the inbox listing plus the total unread count.
type ListThreadsResponse struct {
	Threads     []MessageThreadResponse `json:"threads"`
	TotalUnread int                     `json:"totalUnread"`
}

// ToMessageThreadResponse converts a domain.MessageThread to its DTO.
func ToMessageThreadResponse(t *domain.MessageThread) MessageThreadResponse {
	return MessageThreadResponse{
		ThreadID:        t.ThreadID,
		Title:           t.Title,
		LastMessage:     t.LastMessage,
		LastMessageTime: t.LastMessageTime,
		UnreadCount:     t.UnreadCount,
		Participants:    t.Participants,
	}
}

// ToMessageResponses converts a slice of domain.Message to []MessageResponse.
func ToMessageResponses(messages []domain.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = MessageResponse{
			MessageID:  m.MessageID,
			ThreadID:   m.ThreadID,
			SenderID:   m.SenderID,
			SenderName: m.SenderName,
			Content:    m.Content,
			Timestamp:  m.Timestamp,
			Read:       m.Read,
		}
	}
	return responses
}
