package services

import (
	"log"
	"sync"
	"time"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/gorm"
)

// RecoCacheService 异步重算用户的 recommendation_caches 行。
// 推荐接口仍然实时计算，这张表只是旁路缓存，
// 点赞/关注/互动之后入队刷新
type RecoCacheService struct {
	queue   chan uint // 待刷新的用户 ID 队列
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	recoCacheService *RecoCacheService
	recoCacheOnce    sync.Once
)

// GetRecoCacheService 获取单例缓存刷新服务
func GetRecoCacheService() *RecoCacheService {
	recoCacheOnce.Do(func() {
		recoCacheService = &RecoCacheService{
			queue:   make(chan uint, 1000), // 缓冲队列，防止阻塞
			pending: make(map[uint]bool),
		}
		go recoCacheService.worker()
	})
	return recoCacheService
}

// ScheduleRefresh 将用户加入刷新队列（异步）。
// 去重机制避免短时间内重复计算同一用户
func (s *RecoCacheService) ScheduleRefresh(userID uint) {
	s.mu.Lock()
	if s.pending[userID] {
		s.mu.Unlock()
		return
	}
	s.pending[userID] = true
	s.mu.Unlock()

	select {
	case s.queue <- userID:
	default:
		// 队列满了，移除 pending 标记
		s.mu.Lock()
		delete(s.pending, userID)
		s.mu.Unlock()
		log.Printf("recommendation cache queue full, skipping user %d", userID)
	}
}

// worker 后台批量处理刷新请求
func (s *RecoCacheService) worker() {
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case userID := <-s.queue:
			batch = append(batch, userID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *RecoCacheService) processBatch(userIDs []uint) {
	for _, userID := range userIDs {
		if err := s.refreshUserCache(userID); err != nil {
			log.Printf("refresh recommendation cache for user %d: %v", userID, err)
		}

		s.mu.Lock()
		delete(s.pending, userID)
		s.mu.Unlock()
	}
}

// refreshUserCache 实时引擎算一遍，整批替换该用户的缓存行
func (s *RecoCacheService) refreshUserCache(userID uint) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return err
	}

	recos, err := GetRecommendations(user.Email, DefaultRecommendationLimit)
	if err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.RecommendationCache{}).Error; err != nil {
			return err
		}
		for _, r := range recos {
			row := models.RecommendationCache{
				UserID:   userID,
				PromptID: r.Prompt.ID,
				Score:    r.Score,
				Reason:   r.Reason,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
