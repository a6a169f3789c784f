package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/francislhj094/pocket-worlds/internal/services/auth"
	"github.com/francislhj094/pocket-worlds/internal/services/leaderboard"
	"github.com/francislhj094/pocket-worlds/internal/services/progression"
	"github.com/francislhj094/pocket-worlds/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemoryStore()
	game := progression.NewGame(s)
	game.Load(context.Background())
	authService := auth.NewService(s)
	board := leaderboard.NewLeaderboard(game)

	return NewRouter(NewHandler(game, authService, board))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func profileFrom(t *testing.T, w *httptest.ResponseRecorder) progression.Profile {
	t.Helper()
	var p progression.Profile
	if err := json.Unmarshal(decode(t, w)["profile"], &p); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	return p
}

func TestGetProfile(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/profile", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	p := profileFrom(t, w)
	if p.Coins != 1000 || p.Gems != 50 || p.Level != 1 {
		t.Errorf("unexpected starting profile: coins=%d gems=%d level=%d", p.Coins, p.Gems, p.Level)
	}
}

func TestUpdateAvatar(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/v1/profile/avatar", map[string]string{
		"skinTone":  "#c68642",
		"face":      "cool",
		"hairStyle": "long",
		"hairColor": "#ff6b9d",
		"outfit":    "sporty",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	p := profileFrom(t, w)
	if p.Avatar.Face != "cool" || p.Avatar.Outfit != "sporty" {
		t.Errorf("avatar not updated: %+v", p.Avatar)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/profile/onboarding/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/profile", nil)
	var seen bool
	if err := json.Unmarshal(decode(t, w)["hasSeenAvatarCreator"], &seen); err != nil {
		t.Fatalf("decode flag: %v", err)
	}
	if !seen {
		t.Error("expected hasSeenAvatarCreator true after completion")
	}
}

func TestSpendEnergy(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/energy/spend", map[string]int{"amount": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if p := profileFrom(t, w); p.Energy != 0 {
		t.Errorf("expected energy 0, got %d", p.Energy)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/energy/spend", map[string]int{"amount": 1})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 when out of energy, got %d", w.Code)
	}
}

func TestSpendEnergyRejectsBadAmount(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/energy/spend", map[string]int{"amount": 0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero amount, got %d", w.Code)
	}
}

func TestRecordGameResult(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/games/obbyRush/result", map[string]int{
		"score":       500,
		"coinsEarned": 120,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	p := profileFrom(t, w)
	if p.GameStats["obbyRush"].HighScore != 500 {
		t.Errorf("expected high score 500, got %d", p.GameStats["obbyRush"].HighScore)
	}
	if p.GameStats["obbyRush"].GamesPlayed != 1 {
		t.Errorf("expected 1 game played, got %d", p.GameStats["obbyRush"].GamesPlayed)
	}
}

func TestRecordGameResultUnknownGame(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/games/chess/result", map[string]int{"score": 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown game, got %d", w.Code)
	}
}

func TestPurchaseItem(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/shop/purchase", map[string]string{"itemId": "wink"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	p := profileFrom(t, w)
	if p.Coins != 700 {
		t.Errorf("expected 700 coins after 300-coin purchase, got %d", p.Coins)
	}

	// 2000-coin suit with 700 coins left.
	w = doJSON(t, r, http.MethodPost, "/api/v1/shop/purchase", map[string]string{"itemId": "hero"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for unaffordable item, got %d", w.Code)
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/shop/purchase", map[string]string{"itemId": "jetpack"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestClaimDailyReward(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/daily/claim", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	out := decode(t, w)
	var reward struct {
		Day   int `json:"day"`
		Coins int `json:"coins"`
	}
	if err := json.Unmarshal(out["reward"], &reward); err != nil {
		t.Fatalf("decode reward: %v", err)
	}
	if reward.Day != 1 || reward.Coins != 100 {
		t.Errorf("expected day-1 reward of 100 coins, got day=%d coins=%d", reward.Day, reward.Coins)
	}
}

func TestGetAchievements(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/achievements", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list []progression.AchievementProgress
	if err := json.Unmarshal(decode(t, w)["achievements"], &list); err != nil {
		t.Fatalf("decode achievements: %v", err)
	}
	if len(list) != 8 {
		t.Errorf("expected 8 achievements, got %d", len(list))
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/catalog/shop",
		"/api/v1/catalog/avatar",
		"/api/v1/catalog/daily-rewards",
	} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestLeaderboardEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/leaderboard/boards", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var boards []leaderboard.BoardInfo
	if err := json.Unmarshal(decode(t, w)["boards"], &boards); err != nil {
		t.Fatalf("decode boards: %v", err)
	}
	if len(boards) != 4 {
		t.Errorf("expected 4 boards, got %d", len(boards))
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/leaderboard/all", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for global board, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/leaderboard/chess", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown board, got %d", w.Code)
	}
}
