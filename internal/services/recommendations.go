package services

import (
	"errors"
	"sort"
	"time"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrPromptNotFound = errors.New("prompt not found")
)

const (
	// DefaultRecommendationLimit 默认返回条数
	DefaultRecommendationLimit = 20

	followedWindowDays  = 7  // 关注创作者的新作窗口
	interestsWindowDays = 30 // 兴趣分类窗口
	trendingWindowDays  = 14 // 热门窗口
	followedTierCap     = 10 // 第一梯队最多取 10 条
	topCategoryCount    = 3  // 取用户点赞最多的前 3 个分类
)

// GetRecommendations 三级回退推荐：关注的创作者 → 兴趣分类 → 全站热门。
// 合并后剔除自己的作品、已点赞的作品和重复项（先到先得），
// 按分值降序稳定排序并截断到 limit。
// 任何一步查询失败都整体失败，不返回部分结果。
func GetRecommendations(userEmail string, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var user models.User
	if err := db.DB.Where("email = ?", userEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	collected := make([]models.Recommendation, 0, limit)

	// Tier 1: 关注的创作者近 7 天的作品，最新优先
	var followed []models.Prompt
	err := db.DB.Preload("User").
		Select("prompts.*").
		Joins("JOIN followers ON followers.followee_id = prompts.user_id").
		Where("followers.follower_id = ?", user.ID).
		Where("prompts.created_at > ?", now.AddDate(0, 0, -followedWindowDays)).
		Order("prompts.created_at DESC").
		Limit(followedTierCap).
		Find(&followed).Error
	if err != nil {
		return nil, err
	}
	for _, p := range followed {
		collected = append(collected, models.Recommendation{
			Prompt: p,
			Reason: models.ReasonFollowed,
			Score:  models.ScoreFollowed,
		})
	}

	// Tier 2: 用户点赞最多的前 3 个分类里近 30 天的作品
	if len(collected) < limit {
		topCategories, err := topLikedCategories(user.ID)
		if err != nil {
			return nil, err
		}
		if len(topCategories) > 0 {
			var interests []models.Prompt
			// relevance = 3(命中兴趣分类) + 1(like_count > 10)，时间新的优先
			err = db.DB.Preload("User").
				Where("category IN ?", topCategories).
				Where("user_id <> ?", user.ID).
				Where("created_at > ?", now.AddDate(0, 0, -interestsWindowDays)).
				Order("(CASE WHEN like_count > 10 THEN 4 ELSE 3 END) DESC, created_at DESC").
				Limit(limit - len(collected)).
				Find(&interests).Error
			if err != nil {
				return nil, err
			}
			for _, p := range interests {
				collected = append(collected, models.Recommendation{
					Prompt: p,
					Reason: models.ReasonInterests,
					Score:  models.ScoreInterests,
				})
			}
		}
	}

	// Tier 3: 近 14 天全站热门，trending = like_count*2 + comment_count
	if len(collected) < limit {
		var trending []models.Prompt
		err = db.DB.Preload("User").
			Where("user_id <> ?", user.ID).
			Where("created_at > ?", now.AddDate(0, 0, -trendingWindowDays)).
			Order("(like_count * 2 + comment_count) DESC, created_at DESC").
			Limit(limit - len(collected)).
			Find(&trending).Error
		if err != nil {
			return nil, err
		}
		for _, p := range trending {
			collected = append(collected, models.Recommendation{
				Prompt: p,
				Reason: models.ReasonTrending,
				Score:  models.ScoreTrending,
			})
		}
	}

	// 合并过滤：剔除已点赞、自己的作品和重复项（第一次出现的保留）
	likedIDs, err := likedPromptIDs(user.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(collected))
	result := make([]models.Recommendation, 0, len(collected))
	for _, r := range collected {
		if r.UserID == user.ID || likedIDs[r.Prompt.ID] || seen[r.Prompt.ID] {
			continue
		}
		seen[r.Prompt.ID] = true
		result = append(result, r)
	}

	// 分值相同只会出现在同一梯队内，稳定排序保持梯队内部顺序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// topLikedCategories 统计用户点赞作品的分类，按点赞数取前 N
func topLikedCategories(userID uint) ([]string, error) {
	var categories []string
	err := db.DB.Model(&models.PromptLike{}).
		Joins("JOIN prompts ON prompts.id = prompt_likes.prompt_id").
		Where("prompt_likes.user_id = ?", userID).
		Group("prompts.category").
		Order("COUNT(*) DESC").
		Limit(topCategoryCount).
		Pluck("prompts.category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// likedPromptIDs 用户点过赞的作品集合，作为推荐排除集。
// 只看点赞，view/copy 互动不剔除（沿用既有行为）
func likedPromptIDs(userID uint) (map[uint]bool, error) {
	var ids []uint
	err := db.DB.Model(&models.PromptLike{}).
		Where("user_id = ?", userID).
		Pluck("prompt_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
