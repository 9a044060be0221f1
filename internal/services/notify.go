package services

import (
	"yourprompty/internal/db"
	"yourprompty/internal/models"
)

// NotifyAsync 异步写入一条通知，失败只影响通知本身
func NotifyAsync(userID, actorID uint, typ models.NotificationType, promptID *uint) {
	go func() {
		notification := models.Notification{
			UserID:   userID,
			ActorID:  &actorID,
			Type:     typ,
			PromptID: promptID,
		}
		db.DB.Create(&notification)
	}()
}
