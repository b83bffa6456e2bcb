package domain

import "time"

// Message is a single message inside a thread.
type Message struct {
	MessageID  string    `json:"messageID"`
	ThreadID   string    `json:"threadID"`
	SenderID   string    `json:"senderID"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// MessageThread is a conversation between office staff and technicians or
// clients, summarized for the inbox list.
type MessageThread struct {
	ThreadID        string    `json:"threadID"`
	Title           string    `json:"title"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
	Participants    []string  `json:"participants"`
}
