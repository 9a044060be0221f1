package services

import (
	"testing"
	"yourprompty/internal/models"
)

func TestRecommendationsUnknownUser(t *testing.T) {
	setupTestDB(t)

	if _, err := GetRecommendations("nobody@example.com", 20); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRecommendationsTrendingOnlyForNewUser(t *testing.T) {
	setupTestDB(t)

	newcomer := createTestUser(t, "newcomer@example.com")
	author := createTestUser(t, "author@example.com")

	// 互动数据不同的三篇，trending = like*2 + comment
	createTestPrompt(t, author, "low", models.CategoryArt, 2, 1, 0)     // 2
	createTestPrompt(t, author, "high", models.CategoryArt, 3, 10, 5)   // 25
	createTestPrompt(t, author, "middle", models.CategoryFun, 1, 3, 2)  // 8
	createTestPrompt(t, author, "too old", models.CategoryFun, 20, 9, 9) // 窗口外

	recos, err := GetRecommendations(newcomer.Email, 20)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	if len(recos) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recos))
	}
	for _, r := range recos {
		if r.Reason != models.ReasonTrending {
			t.Errorf("expected reason %q, got %q", models.ReasonTrending, r.Reason)
		}
		if r.Score != models.ScoreTrending {
			t.Errorf("expected score %d, got %d", models.ScoreTrending, r.Score)
		}
	}

	wantOrder := []string{"high", "middle", "low"}
	for i, title := range wantOrder {
		if recos[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, recos[i].Title)
		}
	}
}

func TestRecommendationsExcludeOwnAndLiked(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	other := createTestUser(t, "other@example.com")

	createTestPrompt(t, user, "mine", models.CategoryArt, 1, 50, 50)
	liked := createTestPrompt(t, other, "already liked", models.CategoryArt, 1, 50, 50)
	createTestPrompt(t, other, "fresh", models.CategoryArt, 1, 5, 0)
	likePrompt(t, user, liked)

	recos, err := GetRecommendations(user.Email, 20)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	for _, r := range recos {
		if r.Prompt.UserID == user.ID {
			t.Errorf("own prompt %q must not be recommended", r.Title)
		}
		if r.Prompt.ID == liked.ID {
			t.Errorf("liked prompt %q must not be recommended", r.Title)
		}
	}
	if len(recos) != 1 || recos[0].Title != "fresh" {
		t.Fatalf("expected only the fresh prompt, got %+v", recos)
	}
}

func TestRecommendationsFollowedCreatorFirst(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	creator := createTestUser(t, "creator@example.com")
	stranger := createTestUser(t, "stranger@example.com")
	followUser(t, user, creator)

	// 关注的创作者两天前发的，互动为零；陌生人发的很热
	followed := createTestPrompt(t, creator, "from creator", models.CategoryWriting, 2, 0, 0)
	createTestPrompt(t, stranger, "viral", models.CategoryFun, 1, 100, 100)

	recos, err := GetRecommendations(user.Email, 20)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(recos) < 2 {
		t.Fatalf("expected at least 2 recommendations, got %d", len(recos))
	}

	if recos[0].Prompt.ID != followed.ID {
		t.Fatalf("expected followed creator's prompt first, got %q", recos[0].Title)
	}
	if recos[0].Reason != models.ReasonFollowed || recos[0].Score != models.ScoreFollowed {
		t.Errorf("unexpected reason/score for tier-1 entry: %q/%d", recos[0].Reason, recos[0].Score)
	}
}

func TestRecommendationsNoDuplicateIDs(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	creator := createTestUser(t, "creator@example.com")
	followUser(t, user, creator)

	// 既是关注来源又满足热门条件，只能出现一次，且按第一次收集的梯队计
	hot := createTestPrompt(t, creator, "hot and followed", models.CategoryArt, 2, 30, 10)

	recos, err := GetRecommendations(user.Email, 20)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	seen := map[uint]int{}
	for _, r := range recos {
		seen[r.Prompt.ID]++
	}
	if seen[hot.ID] != 1 {
		t.Fatalf("prompt appeared %d times, expected once", seen[hot.ID])
	}
	if recos[0].Reason != models.ReasonFollowed {
		t.Errorf("tier-1 hit must not be demoted, got reason %q", recos[0].Reason)
	}
}

func TestRecommendationsInterestScenario(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	photographer := createTestUser(t, "photographer@example.com")
	trendsetter := createTestUser(t, "trendsetter@example.com")

	// 用户只赞过 Photography（窗口外的旧作品，不会混入结果）
	for i := 0; i < 3; i++ {
		old := createTestPrompt(t, photographer, "old photo", models.CategoryPhotography, 40, 0, 0)
		likePrompt(t, user, old)
	}

	// 5 篇他人的 Photography，30 天内但在热门窗口外
	for i := 0; i < 5; i++ {
		createTestPrompt(t, photographer, "photo", models.CategoryPhotography, 20, 1, 0)
	}
	// 5 篇其他分类的热门，14 天内
	for i := 0; i < 5; i++ {
		createTestPrompt(t, trendsetter, "trend", models.CategoryFun, 3, 20, 4)
	}

	recos, err := GetRecommendations(user.Email, 20)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	if len(recos) != 10 {
		t.Fatalf("expected 10 recommendations, got %d", len(recos))
	}
	for i := 0; i < 5; i++ {
		if recos[i].Reason != models.ReasonInterests || recos[i].Category != models.CategoryPhotography {
			t.Errorf("position %d: expected interest-based Photography entry, got %q/%q", i, recos[i].Reason, recos[i].Category)
		}
		if recos[i].Score != models.ScoreInterests {
			t.Errorf("position %d: expected score %d, got %d", i, models.ScoreInterests, recos[i].Score)
		}
	}
	for i := 5; i < 10; i++ {
		if recos[i].Reason != models.ReasonTrending {
			t.Errorf("position %d: expected trending entry, got %q", i, recos[i].Reason)
		}
	}
	for _, r := range recos {
		if r.Reason == models.ReasonFollowed {
			t.Errorf("user follows nobody, tier-1 entry %q unexpected", r.Title)
		}
	}
}

func TestRecommendationsInterestLikeBonusOrdering(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")

	seed := createTestPrompt(t, author, "seed", models.CategoryCoding, 40, 0, 0)
	likePrompt(t, user, seed)

	// 旧但 like_count > 10 的排在新但不热的前面
	popular := createTestPrompt(t, author, "popular", models.CategoryCoding, 25, 12, 0)
	recent := createTestPrompt(t, author, "recent", models.CategoryCoding, 20, 2, 0)

	recos, err := GetRecommendations(user.Email, 20)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(recos) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recos))
	}
	if recos[0].Prompt.ID != popular.ID || recos[1].Prompt.ID != recent.ID {
		t.Fatalf("expected popular before recent, got %q then %q", recos[0].Title, recos[1].Title)
	}
}

func TestRecommendationsLimit(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "user@example.com")
	author := createTestUser(t, "author@example.com")

	for i := 0; i < 8; i++ {
		createTestPrompt(t, author, "prompt", models.CategoryArt, 1, i, 0)
	}

	recos, err := GetRecommendations(user.Email, 5)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(recos) != 5 {
		t.Fatalf("expected limit of 5, got %d", len(recos))
	}
}
