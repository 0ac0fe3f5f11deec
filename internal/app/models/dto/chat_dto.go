package dto

import "github.com/upgoma/upg-portal/internal/app/models"

// SendMessageRequest carries one user message to the assistant.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatSessionResponse returns a session transcript.
type ChatSessionResponse struct {
	ID       string               `json:"id"`
	Messages []models.ChatMessage `json:"messages"`
}

// ChatReplyResponse returns the assistant reply appended for one send.
type ChatReplyResponse struct {
	Reply models.ChatMessage `json:"reply"`
}
