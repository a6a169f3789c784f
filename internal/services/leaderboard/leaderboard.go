package leaderboard

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
	"github.com/francislhj094/pocket-worlds/internal/services/progression"
)

// GlobalBoard aggregates across all games; the player's global score is
// level * 100 rather than any single high score.
const GlobalBoard = "all"

const boardSize = 10

type Entry struct {
	ID       string                          `json:"id"`
	Username string                          `json:"username"`
	Avatar   progression.AvatarCustomization `json:"avatar"`
	Score    int                             `json:"score"`
	Rank     int                             `json:"rank"`
}

type BoardInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ProfileSource exposes the local player's committed profile. The
// progression engine satisfies it.
type ProfileSource interface {
	Profile() progression.Profile
}

type Leaderboard interface {
	Boards() []BoardInfo
	Top(board string) []Entry
}

type LeaderboardImpl struct {
	profiles ProfileSource
}

func NewLeaderboard(profiles ProfileSource) Leaderboard {
	return &LeaderboardImpl{
		profiles: profiles,
	}
}

func (l *LeaderboardImpl) Boards() []BoardInfo {
	return []BoardInfo{
		{ID: GlobalBoard, Name: "Global", Icon: "🌍"},
		{ID: string(gamedata.GameObbyRush), Name: "Obby Rush", Icon: "🏃"},
		{ID: string(gamedata.GameMemoryMatch), Name: "Memory Match", Icon: "🧠"},
		{ID: string(gamedata.GameDodgeMaster), Name: "Dodge Master", Icon: "⚡"},
	}
}

func ValidBoard(board string) bool {
	return board == GlobalBoard || gamedata.ValidGame(gamedata.GameID(board))
}

// Top returns the mock board for the given view with the local player's
// own score mixed in. Mock opponents are seeded per board so the list is
// stable between reads; ranks are assigned after sorting. Unknown boards
// return nil.
func (l *LeaderboardImpl) Top(board string) []Entry {
	if !ValidBoard(board) {
		return nil
	}

	profile := l.profiles.Profile()

	playerScore := profile.Level * 100
	if board != GlobalBoard {
		playerScore = profile.GameStats[gamedata.GameID(board)].HighScore
	}

	entries := make([]Entry, 0, boardSize)
	entries = append(entries, Entry{
		ID:       profile.ID,
		Username: profile.Username,
		Avatar:   profile.Avatar,
		Score:    playerScore,
	})

	rng := rand.New(rand.NewSource(boardSeed(board)))
	for i := 1; i < boardSize; i++ {
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("player_%d", i),
			Username: fmt.Sprintf("Player %d", i+1),
			Avatar:   progression.DefaultAvatar(),
			Score:    rng.Intn(1000),
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func boardSeed(board string) int64 {
	h := fnv.New64a()
	h.Write([]byte(board))
	return int64(h.Sum64())
}
