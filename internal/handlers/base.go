package handlers

import (
	"log"
	"net/http"
	"yourprompty/internal/middleware"
	"yourprompty/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError 统一错误信封 {"error": "..."}
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// serverError 内部错误：记日志，对外只给通用信息，不泄漏细节
func serverError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, "internal server error")
}

// currentUser 取出 AuthRequired 放进上下文的用户
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// optionalUser 可选登录场景下取用户，未登录返回 nil
func optionalUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}
