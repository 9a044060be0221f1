package services

import (
	"errors"
	"time"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidInteraction = errors.New("invalid interaction type")

// TrackInteraction 记录一次互动 (like/view/copy)。
// (user, prompt, kind) 已存在时只刷新时间戳，不产生重复行
func TrackInteraction(userEmail string, promptID uint, kind string) (*models.UserInteraction, error) {
	if !models.IsValidInteraction(kind) {
		return nil, ErrInvalidInteraction
	}

	var user models.User
	if err := db.DB.Where("email = ?", userEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var prompt models.Prompt
	if err := db.DB.First(&prompt, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	interaction := models.UserInteraction{
		UserID:   user.ID,
		PromptID: promptID,
		Kind:     kind,
	}
	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "prompt_id"}, {Name: "kind"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"updated_at": time.Now(),
		}),
	}).Create(&interaction).Error
	if err != nil {
		return nil, err
	}

	// 互动变化后异步刷新该用户的推荐缓存
	GetRecoCacheService().ScheduleRefresh(user.ID)

	return &interaction, nil
}
