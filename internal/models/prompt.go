package models

import (
	"time"
)

// 固定分类集合，创建时校验
const (
	CategoryArt         = "Art"
	CategoryPhotography = "Photography"
	CategoryWriting     = "Writing"
	CategoryCoding      = "Coding"
	CategoryMarketing   = "Marketing"
	CategoryBusiness    = "Business"
	CategoryEducation   = "Education"
	CategoryFun         = "Fun"
)

// Categories 返回所有合法分类（顺序固定，前端下拉框直接用）
func Categories() []string {
	return []string{
		CategoryArt,
		CategoryPhotography,
		CategoryWriting,
		CategoryCoding,
		CategoryMarketing,
		CategoryBusiness,
		CategoryEducation,
		CategoryFun,
	}
}

// IsValidCategory 校验分类是否在固定集合内
func IsValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

type Prompt struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title           string    `gorm:"not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Category        string    `gorm:"size:30;not null;index" json:"category"`
	ImageURL        string    `gorm:"not null" json:"image_url"`
	ImageDeleteHash string    `gorm:"size:32" json:"-"` // Imgur deletehash，删帖时尽力清理
	LikeCount       int       `gorm:"default:0" json:"like_count"`    // 冗余计数，与 prompt_likes 同步
	CommentCount    int       `gorm:"default:0" json:"comment_count"` // 冗余计数，与 prompt_comments 同步
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
