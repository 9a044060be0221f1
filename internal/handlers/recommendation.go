package handlers

import (
	"errors"
	"net/http"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/services"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct{}

func NewRecommendationHandler() *RecommendationHandler {
	return &RecommendationHandler{}
}

// Get 推荐信息流 GET /api/recommendations?limit=N
func (h *RecommendationHandler) Get(c *gin.Context) {
	user := currentUser(c)

	limit := utils.StringToInt(c.Query("limit"))
	if limit <= 0 {
		limit = services.DefaultRecommendationLimit
	}

	recommendations, err := services.GetRecommendations(user.Email, limit)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":           len(recommendations),
		"recommendations": recommendations,
	})
}

type trackRequest struct {
	PromptID        uint   `json:"prompt_id"`
	InteractionType string `json:"interaction_type"`
}

// Track 记录互动 POST /api/recommendations/track
func (h *RecommendationHandler) Track(c *gin.Context) {
	user := currentUser(c)

	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PromptID == 0 || req.InteractionType == "" {
		respondError(c, http.StatusBadRequest, "prompt_id and interaction_type are required")
		return
	}

	interaction, err := services.TrackInteraction(user.Email, req.PromptID, req.InteractionType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInteraction):
			respondError(c, http.StatusBadRequest, "interaction_type must be like, view or copy")
		case errors.Is(err, services.ErrPromptNotFound):
			respondError(c, http.StatusNotFound, "prompt not found")
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"interaction": interaction})
}

// 按邮箱解析创作者，路由参数 :creatorEmail
func (h *RecommendationHandler) creatorByEmail(c *gin.Context) (*models.User, bool) {
	var creator models.User
	if err := db.DB.Where("email = ?", c.Param("creatorEmail")).First(&creator).Error; err != nil {
		respondError(c, http.StatusNotFound, "creator not found")
		return nil, false
	}
	return &creator, true
}

// Follow POST /api/recommendations/follow/:creatorEmail
func (h *RecommendationHandler) Follow(c *gin.Context) {
	user := currentUser(c)
	creator, ok := h.creatorByEmail(c)
	if !ok {
		return
	}

	if err := services.Follow(user.ID, creator.ID); err != nil {
		if errors.Is(err, services.ErrSelfFollow) {
			respondError(c, http.StatusBadRequest, "you cannot follow yourself")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": true})
}

// Unfollow DELETE /api/recommendations/follow/:creatorEmail
func (h *RecommendationHandler) Unfollow(c *gin.Context) {
	user := currentUser(c)
	creator, ok := h.creatorByEmail(c)
	if !ok {
		return
	}

	if err := services.Unfollow(user.ID, creator.ID); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": false})
}

// FollowStatus GET /api/recommendations/follow/:creatorEmail/status
func (h *RecommendationHandler) FollowStatus(c *gin.Context) {
	user := currentUser(c)
	creator, ok := h.creatorByEmail(c)
	if !ok {
		return
	}

	isFollowing, err := services.IsFollowing(user.ID, creator.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_following": isFollowing})
}

// Stats GET /api/recommendations/stats/:userEmail （公开）
func (h *RecommendationHandler) Stats(c *gin.Context) {
	var target models.User
	if err := db.DB.Where("email = ?", c.Param("userEmail")).First(&target).Error; err != nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}

	stats, err := services.GetFollowStats(target.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
