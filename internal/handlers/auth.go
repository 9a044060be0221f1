package handlers

import (
	"net/http"
	"strings"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup 注册并直接签发 token
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	parts := strings.Split(req.Email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		respondError(c, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Password) < 6 {
		respondError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	// 没填用户名就用邮箱前缀
	username := strings.TrimSpace(req.Username)
	if username == "" {
		username = parts[0]
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Username: username,
		Email:    req.Email,
		Password: hash,
		Avatar:   utils.GetRandomEmoji(), // 随机 emoji 头像
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// 邮箱唯一索引冲突
		respondError(c, http.StatusConflict, "email already registered")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login 邮箱密码登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me 返回当前登录用户
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}
