package handlers

import (
	"net/http"
	"strings"
	"yourprompty/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct{}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{}
}

type chatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

// Ask 提示词助手对话，会话历史在服务端的 TTL 缓存里
func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		respondError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, conversationID, err := services.Ask(req.ConversationID, strings.TrimSpace(req.Message))
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":           reply,
		"conversation_id": conversationID,
	})
}
