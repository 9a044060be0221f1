package models

import (
	"time"
)

// 互动类型
const (
	InteractionLike = "like"
	InteractionView = "view"
	InteractionCopy = "copy"
)

// IsValidInteraction 校验互动类型
func IsValidInteraction(kind string) bool {
	return kind == InteractionLike || kind == InteractionView || kind == InteractionCopy
}

// UserInteraction 用户互动记录 - (user, prompt, kind) 三元组唯一，
// 重复互动只刷新 UpdatedAt，不产生新行
type UserInteraction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_prompt_kind" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PromptID  uint      `gorm:"not null;index;uniqueIndex:idx_user_prompt_kind" json:"prompt_id"`
	Prompt    Prompt    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Kind      string    `gorm:"size:10;not null;uniqueIndex:idx_user_prompt_kind" json:"interaction_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
