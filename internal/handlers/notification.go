package handlers

import (
	"net/http"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
	"yourprompty/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List 最近 50 条通知
func (h *NotificationHandler) List(c *gin.Context) {
	user := currentUser(c)

	var notifications []models.Notification
	err := db.DB.Preload("Actor").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error
	if err != nil {
		serverError(c, err)
		return
	}

	var unread int64
	db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// Read 标记单条已读
func (h *NotificationHandler) Read(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).
		First(&notification).Error; err != nil {
		respondError(c, http.StatusNotFound, "notification not found")
		return
	}

	notification.IsRead = true
	if err := db.DB.Save(&notification).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}

// ReadAll 全部标记已读
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := currentUser(c)

	err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}

// Delete 删除单条通知
func (h *NotificationHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id := utils.StringToUint(c.Param("id"))

	res := db.DB.Where("id = ? AND user_id = ?", id, user.ID).
		Delete(&models.Notification{})
	if res.Error != nil {
		serverError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
