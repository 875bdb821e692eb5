package storage

import "time"

// MainUserKey scopes all state for the local single-user install.
const MainUserKey = "main_user"

// GameState is the aggregate progression state, one row per user.
// Mutated only through the engine's transition functions.
type GameState struct {
	UserKey string
	HP      int
	MaxHP   int
	TotalXP int
	Coins   int
	Level   int
	Streak  int

	// Lifetime completion counters per task kind. Drive first-of-kind
	// achievement events and the status display.
	HabitsDone  int
	DailiesDone int
	TodosDone   int
}

// Profile is the user-facing customization, restricted to owned cosmetics.
type Profile struct {
	UserKey     string
	DisplayName string
	Avatar      string
	Frame       string
	NameColor   string
	Background  string
}

// Task is the shared row shape for habits, dailies and todos; Kind selects
// the variant. Reward values are frozen at creation time.
type Task struct {
	ID          int64
	Kind        string
	Title       string
	Notes       *string
	Difficulty  string
	Priority    *string // todos only
	XPReward    int
	CoinReward  int
	Positive    bool // habits only
	Streak      int  // habits and dailies
	Completed   bool // dailies and todos
	DueAt       *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// AchievementState is the runtime unlock state for one catalog achievement.
type AchievementState struct {
	AchievementID string
	Unlocked      bool
	UnlockedAt    *time.Time
	Progress      int
}

// OwnedItem records shop-item ownership; rows are only ever inserted.
type OwnedItem struct {
	ItemID  string
	OwnedAt time.Time
}
