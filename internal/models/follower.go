package models

import (
	"time"
)

// Follower 关注关系（follower 关注 followee）
// 复合唯一键避免重复关注，自己关注自己在服务层拒绝
type Follower struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowerU  User      `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FolloweeID uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"followee_id"`
	FolloweeU  User      `gorm:"foreignKey:FolloweeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
