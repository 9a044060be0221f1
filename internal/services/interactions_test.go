package services

import (
	"errors"
	"testing"
	"yourprompty/internal/db"
	"yourprompty/internal/models"
)

func TestTrackInteractionValidation(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	prompt := createTestPrompt(t, user, "prompt", models.CategoryArt, 1, 0, 0)

	if _, err := TrackInteraction(user.Email, prompt.ID, "bookmark"); !errors.Is(err, ErrInvalidInteraction) {
		t.Fatalf("expected ErrInvalidInteraction, got %v", err)
	}
	if _, err := TrackInteraction("ghost@example.com", prompt.ID, models.InteractionView); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := TrackInteraction(user.Email, 9999, models.InteractionView); !errors.Is(err, ErrPromptNotFound) {
		t.Fatalf("expected ErrPromptNotFound, got %v", err)
	}
}

func TestTrackInteractionUpsert(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")
	prompt := createTestPrompt(t, author, "prompt", models.CategoryArt, 1, 0, 0)

	if _, err := TrackInteraction(user.Email, prompt.ID, models.InteractionView); err != nil {
		t.Fatalf("first track: %v", err)
	}
	if _, err := TrackInteraction(user.Email, prompt.ID, models.InteractionView); err != nil {
		t.Fatalf("repeat track: %v", err)
	}
	if _, err := TrackInteraction(user.Email, prompt.ID, models.InteractionCopy); err != nil {
		t.Fatalf("copy track: %v", err)
	}

	// 同 kind 不重复，异 kind 各一行
	var viewRows, totalRows int64
	db.DB.Model(&models.UserInteraction{}).
		Where("user_id = ? AND prompt_id = ? AND kind = ?", user.ID, prompt.ID, models.InteractionView).
		Count(&viewRows)
	db.DB.Model(&models.UserInteraction{}).
		Where("user_id = ? AND prompt_id = ?", user.ID, prompt.ID).
		Count(&totalRows)

	if viewRows != 1 {
		t.Fatalf("expected 1 view row, got %d", viewRows)
	}
	if totalRows != 2 {
		t.Fatalf("expected 2 interaction rows, got %d", totalRows)
	}
}
