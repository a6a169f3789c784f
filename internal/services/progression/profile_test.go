package progression

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
)

func TestDefaultProfile(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultProfile(now)

	if !strings.HasPrefix(p.ID, "player_") {
		t.Errorf("unexpected id %q", p.ID)
	}
	if p.Username != "Player" || p.Level != 1 || p.XP != 0 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.Coins != 1000 || p.Gems != 50 {
		t.Errorf("unexpected starting balances: coins=%d gems=%d", p.Coins, p.Gems)
	}
	if p.Energy != 5 || p.MaxEnergy != 5 {
		t.Errorf("unexpected energy: %d/%d", p.Energy, p.MaxEnergy)
	}
	if p.Inventory.TotalItems() != gamedata.DefaultItemCount {
		t.Errorf("default inventory should hold %d items, got %d", gamedata.DefaultItemCount, p.Inventory.TotalItems())
	}
	if len(p.GameStats) != 3 {
		t.Errorf("expected stats for 3 games, got %d", len(p.GameStats))
	}
	if p.CreatedAt != now.UnixMilli() || p.LastEnergyUpdate != now.UnixMilli() {
		t.Error("timestamps not taken from creation time")
	}
}

func TestProfileJSONRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultProfile(now)
	p.Avatar.Hat = "crown"
	p.Avatar.Effect = "sparkle"
	p.Level = 7
	p.XP = 123
	p.Energy = 2
	p.Achievements = []string{"first_game", "obby_master"}
	p.GameStats[gamedata.GameObbyRush] = GameStats{HighScore: 1200, GamesPlayed: 9, TotalCoins: 430}
	p.DailyStreak = 6
	p.LastLoginDate = "2024-06-01"
	p.Inventory.Hats = []string{"cap"}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Profile
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(p, back) {
		t.Errorf("round trip changed the profile:\n before %+v\n after  %+v", p, back)
	}
}

func TestProfileJSONFieldNames(t *testing.T) {
	p := DefaultProfile(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// Keys must match the persisted layout of the mobile client.
	for _, key := range []string{
		`"maxEnergy"`, `"lastEnergyUpdate"`, `"gameStats"`, `"obbyRush"`,
		`"memoryMatch"`, `"dodgeMaster"`, `"dailyStreak"`, `"lastLoginDate"`,
		`"skinTone"`, `"hairStyle"`, `"highScore"`, `"gamesPlayed"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized profile missing key %s", key)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := DefaultProfile(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	cp := p.Clone()

	cp.Inventory.Faces[0] = "changed"
	cp.GameStats[gamedata.GameObbyRush] = GameStats{HighScore: 999}

	if p.Inventory.Faces[0] == "changed" {
		t.Error("clone shares inventory backing array")
	}
	if p.GameStats[gamedata.GameObbyRush].HighScore == 999 {
		t.Error("clone shares game stats map")
	}
}
