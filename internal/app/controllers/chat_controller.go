package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upgoma/upg-portal/internal/app/models/dto"
	"github.com/upgoma/upg-portal/internal/app/services"
	"github.com/upgoma/upg-portal/internal/middleware"
)

// ChatController handles assistant chat sessions.
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// CreateSession opens a new chat session
// @Summary Open a chat session
// @Description Creates a session whose transcript starts with the assistant greeting
// @Tags chat
// @Produce json
// @Success 201 {object} dto.APIResponse{data=dto.ChatSessionResponse}
// @Router /chat/sessions [post]
func (c *ChatController) CreateSession(ctx *gin.Context) {
	id, transcript := c.chatService.CreateSession()

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.ChatSessionResponse{ID: id, Messages: transcript},
		Timestamp: time.Now(),
	})
}

// GetSession returns a session transcript
// @Summary Get a chat transcript
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChatSessionResponse}
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /chat/sessions/{id} [get]
func (c *ChatController) GetSession(ctx *gin.Context) {
	id := ctx.Param("id")
	transcript, err := c.chatService.Transcript(id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ChatSessionResponse{ID: id, Messages: transcript},
		Timestamp: time.Now(),
	})
}

// SendMessage sends a user message and returns the assistant reply
// @Summary Send a chat message
// @Description Appends the message to the transcript and generates the assistant reply
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SendMessageRequest true "User message"
// @Success 200 {object} dto.APIResponse{data=dto.ChatReplyResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid message"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /chat/sessions/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, "Invalid message", err)
		return
	}

	reply, err := c.chatService.Send(ctx.Request.Context(), ctx.Param("id"), req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ChatReplyResponse{Reply: reply},
		Timestamp: time.Now(),
	})
}
