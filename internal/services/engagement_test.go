package services

import (
	"errors"
	"testing"
	"yourprompty/internal/db"
	"yourprompty/internal/models"

	"gorm.io/gorm"
)

func TestToggleLikeIsItsOwnInverse(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")
	prompt := createTestPrompt(t, author, "prompt", models.CategoryArt, 1, 0, 0)

	liked, count, err := ToggleLike(user.ID, prompt.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("expected liked=true count=1, got %v/%d", liked, count)
	}

	liked, count, err = ToggleLike(user.ID, prompt.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked || count != 0 {
		t.Fatalf("expected liked=false count=0, got %v/%d", liked, count)
	}

	// Like 行也要跟着消失
	var rows int64
	db.DB.Model(&models.PromptLike{}).
		Where("prompt_id = ? AND user_id = ?", prompt.ID, user.ID).
		Count(&rows)
	if rows != 0 {
		t.Fatalf("expected no like rows, got %d", rows)
	}
}

func TestToggleLikeCounterNeverNegative(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")
	// 计数已经是 0，但 Like 行存在（模拟历史数据漂移）
	prompt := createTestPrompt(t, author, "prompt", models.CategoryArt, 1, 0, 0)
	likePrompt(t, user, prompt)

	liked, count, err := ToggleLike(user.ID, prompt.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if liked {
		t.Fatal("expected unlike")
	}
	if count != 0 {
		t.Fatalf("counter must floor at 0, got %d", count)
	}
}

func TestToggleLikeUnknownPrompt(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "user@example.com")

	if _, _, err := ToggleLike(user.ID, 9999); !errors.Is(err, ErrPromptNotFound) {
		t.Fatalf("expected ErrPromptNotFound, got %v", err)
	}
}

func TestCommentCounters(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")
	prompt := createTestPrompt(t, author, "prompt", models.CategoryArt, 1, 0, 0)

	first, err := CreateComment(user.ID, prompt.ID, "great prompt")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if _, err := CreateComment(user.ID, prompt.ID, "works well with gpt"); err != nil {
		t.Fatalf("create second comment: %v", err)
	}

	var fresh models.Prompt
	db.DB.First(&fresh, prompt.ID)
	if fresh.CommentCount != 2 {
		t.Fatalf("expected comment_count=2, got %d", fresh.CommentCount)
	}

	if err := DeleteComment(user.ID, first.ID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
	db.DB.First(&fresh, prompt.ID)
	if fresh.CommentCount != 1 {
		t.Fatalf("expected comment_count=1 after delete, got %d", fresh.CommentCount)
	}
}

func TestDeleteCommentOnlyOwn(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	other := createTestUser(t, "other@example.com")
	prompt := createTestPrompt(t, user, "prompt", models.CategoryArt, 1, 0, 0)

	comment, err := CreateComment(user.ID, prompt.ID, "mine")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := DeleteComment(other.ID, comment.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for foreign comment, got %v", err)
	}
}
