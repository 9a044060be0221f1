package models

import (
	"time"
)

// 三个推荐来源的理由文案和优先级分值
const (
	ReasonFollowed  = "From creators you follow"
	ReasonInterests = "Based on your interests"
	ReasonTrending  = "Trending now"

	ScoreFollowed  = 10
	ScoreInterests = 7
	ScoreTrending  = 5
)

// Recommendation 推荐结果 - 引擎返回给接口层的展示结构
type Recommendation struct {
	Prompt
	Reason string `json:"reason"`
	Score  int    `json:"score"`
}

// RecommendationCache 推荐缓存表 - 后台任务异步写入，
// 引擎本身不读它，只作为离线侧表
type RecommendationCache struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_prompt_reco" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PromptID  uint      `gorm:"not null;uniqueIndex:idx_user_prompt_reco" json:"prompt_id"`
	Prompt    Prompt    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Score     int       `gorm:"not null" json:"score"`
	Reason    string    `gorm:"size:50" json:"reason"`
	UpdatedAt time.Time `json:"updated_at"`
}
