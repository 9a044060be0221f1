package handlers

import (
	"errors"
	"net/http"
	"yourprompty/internal/services"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// Toggle 点赞/取消点赞开关，返回最新状态和计数
func (h *LikeHandler) Toggle(c *gin.Context) {
	user := currentUser(c)
	promptID := utils.StringToUint(c.Param("id"))

	liked, likeCount, err := services.ToggleLike(user.ID, promptID)
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			respondError(c, http.StatusNotFound, "prompt not found")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": likeCount})
}
