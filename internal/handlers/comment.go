package handlers

import (
	"errors"
	"net/http"
	"strings"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/services"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List 某个提示词下的评论，旧的在前
func (h *CommentHandler) List(c *gin.Context) {
	promptID := utils.StringToUint(c.Param("id"))

	var comments []models.PromptComment
	err := db.DB.Preload("User").
		Where("prompt_id = ?", promptID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create 发表评论
func (h *CommentHandler) Create(c *gin.Context) {
	user := currentUser(c)
	promptID := utils.StringToUint(c.Param("id"))

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		respondError(c, http.StatusBadRequest, "content is required")
		return
	}

	comment, err := services.CreateComment(user.ID, promptID, strings.TrimSpace(req.Content))
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			respondError(c, http.StatusNotFound, "prompt not found")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// Delete 删除自己的评论
func (h *CommentHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	commentID := utils.StringToUint(c.Param("cid"))

	if err := services.DeleteComment(user.ID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "comment not found")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
