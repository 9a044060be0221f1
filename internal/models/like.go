package models

import (
	"time"
)

// PromptLike 点赞记录 - Like 行本身是"已赞"状态的唯一事实来源，
// Prompt.LikeCount 只是跟随它的缓存计数
type PromptLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PromptID  uint      `gorm:"not null;index;uniqueIndex:idx_prompt_user_like" json:"prompt_id"`
	Prompt    Prompt    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_prompt_user_like" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
