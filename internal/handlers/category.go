package handlers

import (
	"net/http"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 固定分类集合及各自的作品数
func (h *CategoryHandler) List(c *gin.Context) {
	type categoryCount struct {
		Category string
		Count    int64
	}
	var rows []categoryCount
	err := db.DB.Model(&models.Prompt{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		serverError(c, err)
		return
	}

	countMap := make(map[string]int64, len(rows))
	for _, r := range rows {
		countMap[r.Category] = r.Count
	}

	categories := make([]gin.H, 0, len(models.Categories()))
	for _, name := range models.Categories() {
		categories = append(categories, gin.H{
			"name":         name,
			"prompt_count": countMap[name],
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
