package services

import (
	"testing"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
)

func TestRefreshUserCacheReplacesRows(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")
	first := createTestPrompt(t, author, "first", models.CategoryArt, 1, 5, 0)

	svc := GetRecoCacheService()
	if err := svc.refreshUserCache(user.ID); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	var rows []models.RecommendationCache
	db.DB.Where("user_id = ?", user.ID).Find(&rows)
	if len(rows) != 1 || rows[0].PromptID != first.ID {
		t.Fatalf("expected 1 cache row for %d, got %+v", first.ID, rows)
	}
	if rows[0].Reason != models.ReasonTrending || rows[0].Score != models.ScoreTrending {
		t.Errorf("unexpected cached reason/score: %q/%d", rows[0].Reason, rows[0].Score)
	}

	// 用户赞了之后重算，旧行整批替换
	likePrompt(t, user, first)
	second := createTestPrompt(t, author, "second", models.CategoryArt, 1, 1, 0)
	if err := svc.refreshUserCache(user.ID); err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	db.DB.Where("user_id = ?", user.ID).Find(&rows)
	if len(rows) != 1 || rows[0].PromptID != second.ID {
		t.Fatalf("expected cache replaced with prompt %d, got %+v", second.ID, rows)
	}
}

func TestRefreshUserCacheUnknownUser(t *testing.T) {
	setupTestDB(t)

	if err := GetRecoCacheService().refreshUserCache(9999); err == nil {
		t.Fatal("expected error for unknown user")
	}
}
