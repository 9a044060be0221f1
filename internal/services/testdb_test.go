package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// setupTestDB 每个测试一个独立的内存 sqlite 库
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = gdb.AutoMigrate(
		&models.User{},
		&models.Prompt{},
		&models.PromptLike{},
		&models.PromptComment{},
		&models.Follower{},
		&models.UserInteraction{},
		&models.RecommendationCache{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	db.DB = gdb
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username: email,
		Email:    email,
		Password: "hash",
	}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestPrompt(t *testing.T, owner *models.User, title, category string, ageDays int, likeCount, commentCount int) *models.Prompt {
	t.Helper()
	prompt := &models.Prompt{
		UserID:       owner.ID,
		Title:        title,
		Content:      "test prompt body",
		Category:     category,
		ImageURL:     "/img/test.jpg",
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedAt:    time.Now().AddDate(0, 0, -ageDays),
	}
	if err := db.DB.Create(prompt).Error; err != nil {
		t.Fatalf("create prompt %s: %v", title, err)
	}
	return prompt
}

// likePrompt 直接写 Like 行（不走 ToggleLike，测试推荐引擎的排除集时用）
func likePrompt(t *testing.T, user *models.User, prompt *models.Prompt) {
	t.Helper()
	like := &models.PromptLike{PromptID: prompt.ID, UserID: user.ID}
	if err := db.DB.Create(like).Error; err != nil {
		t.Fatalf("create like: %v", err)
	}
}

func followUser(t *testing.T, follower, followee *models.User) {
	t.Helper()
	if err := Follow(follower.ID, followee.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
}
