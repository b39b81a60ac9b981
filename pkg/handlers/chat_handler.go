package handlers

import (
	"net/http"

	"vita-path-api/pkg/models"
	"vita-path-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the assistant chat endpoints.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// GetChatService returns the underlying chat service.
func (ch *ChatHandler) GetChatService() *services.ChatService {
	return ch.chatService
}

// PostMessage handles one chat turn: the user message is appended to the
// transcript immediately and the classified bot reply strictly after it.
func (ch *ChatHandler) PostMessage(c *gin.Context) {
	var req models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat message is required"})
		return
	}

	userMessage, botMessage, err := ch.chatService.Send(req.SessionID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"response": gin.H{
			"session_id": botMessage.SessionID,
			"message_id": botMessage.ID,
			"text":       botMessage.Text,
			"category":   botMessage.Category,
			"language":   botMessage.Language,
			"user_message_id": userMessage.ID,
		},
	})
}

// GetHistory returns the transcript of a session.
func (ch *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	transcript, ok := ch.chatService.History(sessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session: " + sessionID})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transcript,
		"count":   len(transcript),
	})
}

// GetSuggestions returns the bilingual quick actions.
func (ch *ChatHandler) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ch.chatService.Suggestions(),
	})
}
