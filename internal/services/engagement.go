package services

import (
	"errors"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleLike 点赞开关：已赞则取消，未赞则点赞。
// 删除/插入和计数更新放在同一个事务里，计数不会因并发反向操作漂移
func ToggleLike(userID, promptID uint) (liked bool, likeCount int, err error) {
	var prompt models.Prompt
	if err := db.DB.First(&prompt, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrPromptNotFound
		}
		return false, 0, err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("prompt_id = ? AND user_id = ?", promptID, userID).
			Delete(&models.PromptLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// 取消点赞，计数下限 0
			liked = false
			return tx.Model(&models.Prompt{}).
				Where("id = ? AND like_count > 0", promptID).
				UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
		}

		// 点赞。并发重复点击时唯一索引兜底，冲突行不重复计数
		like := models.PromptLike{PromptID: promptID, UserID: userID}
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if ins.Error != nil {
			return ins.Error
		}
		liked = true
		if ins.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Prompt{}).
			Where("id = ?", promptID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	if err != nil {
		return false, 0, err
	}

	if liked && prompt.UserID != userID {
		NotifyAsync(prompt.UserID, userID, models.NotificationTypeLike, &promptID)
	}
	GetRecoCacheService().ScheduleRefresh(userID)

	// 返回最新计数
	var fresh models.Prompt
	if err := db.DB.Select("like_count").First(&fresh, promptID).Error; err != nil {
		return liked, 0, err
	}
	return liked, fresh.LikeCount, nil
}

// CreateComment 发表评论并原子更新冗余计数
func CreateComment(userID, promptID uint, content string) (*models.PromptComment, error) {
	var prompt models.Prompt
	if err := db.DB.First(&prompt, promptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	comment := models.PromptComment{
		PromptID: promptID,
		UserID:   userID,
		Content:  content,
	}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Prompt{}).
			Where("id = ?", promptID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}

	if prompt.UserID != userID {
		NotifyAsync(prompt.UserID, userID, models.NotificationTypeComment, &promptID)
	}

	db.DB.Preload("User").First(&comment, comment.ID)
	return &comment, nil
}

// DeleteComment 删除自己的评论，冗余计数同事务回落（下限 0）
func DeleteComment(userID, commentID uint) error {
	var comment models.PromptComment
	if err := db.DB.Where("id = ? AND user_id = ?", commentID, userID).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gorm.ErrRecordNotFound
		}
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Prompt{}).
			Where("id = ? AND comment_count > 0", comment.PromptID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).Error
	})
}
