package services

import (
	"errors"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/gorm/clause"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// FollowStats 关注统计
type FollowStats struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// Follow 建立关注边，重复关注是幂等的。拒绝自己关注自己
func Follow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	edge := models.Follower{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	res := db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	if res.Error != nil {
		return res.Error
	}

	// 新建立的关注才通知对方、刷新推荐缓存
	if res.RowsAffected > 0 {
		NotifyAsync(followeeID, followerID, models.NotificationTypeFollow, nil)
		GetRecoCacheService().ScheduleRefresh(followerID)
	}
	return nil
}

// Unfollow 删除关注边，不存在时为 no-op
func Unfollow(followerID, followeeID uint) error {
	res := db.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follower{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		GetRecoCacheService().ScheduleRefresh(followerID)
	}
	return nil
}

// IsFollowing 查询是否已关注
func IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Follower{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowStats 粉丝数 / 关注数
func GetFollowStats(userID uint) (*FollowStats, error) {
	stats := &FollowStats{}
	if err := db.DB.Model(&models.Follower{}).
		Where("followee_id = ?", userID).
		Count(&stats.FollowersCount).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&models.Follower{}).
		Where("follower_id = ?", userID).
		Count(&stats.FollowingCount).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
