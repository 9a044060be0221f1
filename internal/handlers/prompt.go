package handlers

import (
	"math"
	"net/http"
	"strings"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/services"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
)

type PromptHandler struct{}

func NewPromptHandler() *PromptHandler {
	return &PromptHandler{}
}

const promptsPerPage = 30

// List 提示词列表，支持分页、分类过滤和关键字搜索
func (h *PromptHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}

	query := db.DB.Model(&models.Prompt{})

	if category := c.Query("category"); category != "" {
		if !models.IsValidCategory(category) {
			respondError(c, http.StatusBadRequest, "unknown category")
			return
		}
		query = query.Where("category = ?", category)
	}

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		serverError(c, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(promptsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var prompts []models.Prompt
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(promptsPerPage).
		Offset((page - 1) * promptsPerPage).
		Find(&prompts).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prompts":      prompts,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages,
	})
}

// Detail 提示词详情，附带渲染后的描述 HTML 和当前用户的点赞状态
func (h *PromptHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var prompt models.Prompt
	if err := db.DB.Preload("User").First(&prompt, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "prompt not found")
		return
	}

	isLiked := false
	if user := optionalUser(c); user != nil {
		var count int64
		db.DB.Model(&models.PromptLike{}).
			Where("prompt_id = ? AND user_id = ?", prompt.ID, user.ID).
			Count(&count)
		isLiked = count > 0
	}

	c.JSON(http.StatusOK, gin.H{
		"prompt":       prompt,
		"content_html": utils.RenderMarkdown(prompt.Content),
		"is_liked":     isLiked,
	})
}

// Create 发布提示词，图片必传，直接透传到 Imgur
func (h *PromptHandler) Create(c *gin.Context) {
	user := currentUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	category := c.PostForm("category")

	if title == "" || content == "" {
		respondError(c, http.StatusBadRequest, "title and content are required")
		return
	}
	if !models.IsValidCategory(category) {
		respondError(c, http.StatusBadRequest, "unknown category")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image is required")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}
	if header.Size > 10*1024*1024 {
		respondError(c, http.StatusBadRequest, "image must be smaller than 10MB")
		return
	}

	result, err := services.UploadImage(file, header)
	if err != nil {
		serverError(c, err)
		return
	}

	prompt := models.Prompt{
		UserID:          user.ID,
		Title:           title,
		Content:         content,
		Category:        category,
		ImageURL:        result.URL,
		ImageDeleteHash: result.DeleteHash,
	}
	if err := db.DB.Create(&prompt).Error; err != nil {
		serverError(c, err)
		return
	}

	prompt.User = *user
	c.JSON(http.StatusCreated, gin.H{"prompt": prompt})
}

// Delete 删除自己的提示词，级联清理由数据库完成，
// Imgur 图片尽力删除，失败不回滚
func (h *PromptHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var prompt models.Prompt
	if err := db.DB.First(&prompt, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "prompt not found")
		return
	}
	if prompt.UserID != user.ID {
		respondError(c, http.StatusForbidden, "you can only delete your own prompts")
		return
	}

	if err := db.DB.Delete(&prompt).Error; err != nil {
		serverError(c, err)
		return
	}

	services.DeleteImageAsync(prompt.ImageDeleteHash)

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
