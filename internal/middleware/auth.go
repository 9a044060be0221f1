package middleware

import (
	"net/http"
	"strings"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// extractToken 从 Authorization 头里取出 Bearer token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// loadUserFromToken 解析 token 并从数据库加载用户
func loadUserFromToken(c *gin.Context) *models.User {
	tokenStr := extractToken(c)
	if tokenStr == "" {
		return nil
	}

	userID, _, err := utils.ParseToken(tokenStr)
	if err != nil {
		return nil
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return nil
	}
	return &user
}

// AuthRequired ensures a valid bearer token and puts the user into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := loadUserFromToken(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(CheckUserKey, user)
		c.Next()
	}
}

// LoadUser 可选登录 - 带了有效 token 就加载用户，没带也放行
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := loadUserFromToken(c); user != nil {
			c.Set(CheckUserKey, user)
		}
		c.Next()
	}
}
