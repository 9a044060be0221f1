package handlers

import (
	"net/http"
	"strings"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile 公开主页：用户信息 + 作品 + 关注统计
func (h *UserHandler) Profile(c *gin.Context) {
	var user models.User
	if err := db.DB.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	var prompts []models.Prompt
	if err := db.DB.Preload("User").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&prompts).Error; err != nil {
		serverError(c, err)
		return
	}

	stats, err := services.GetFollowStats(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"prompts": prompts,
		"stats":   stats,
	})
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

// UpdateMe 修改自己的资料
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := currentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		user.Username = username
	}
	if len(req.Bio) > 200 {
		respondError(c, http.StatusBadRequest, "bio must be at most 200 characters")
		return
	}
	user.Bio = req.Bio
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := db.DB.Save(user).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
