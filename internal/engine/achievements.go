package engine

import (
	"time"

	"lifequest/internal/catalog"
)

// UnlockState is the mutable runtime state for one achievement. The catalog
// definition itself never changes.
type UnlockState struct {
	Unlocked   bool
	UnlockedAt time.Time
	Progress   int
}

// AchievementEngine evaluates semantic events against the achievement
// catalog. It never mutates coins or any other game state; unlock coin
// rewards are reported back for the progression store to credit.
type AchievementEngine struct {
	catalog *catalog.Catalog
}

func NewAchievementEngine(c *catalog.Catalog) *AchievementEngine {
	return &AchievementEngine{catalog: c}
}

// EvalResult carries the state changes produced by one event.
type EvalResult struct {
	// Updated holds new state values for the achievements the event
	// touched, keyed by achievement id. The input state is never mutated.
	Updated map[string]UnlockState
	// NewlyUnlocked lists unlocks in catalog order. Already-unlocked
	// achievements never reappear here.
	NewlyUnlocked []*catalog.Achievement
}

// Evaluate applies one event to the unlock state. Idempotent with respect to
// already-unlocked achievements: unlocks are one-way, and a counter that
// would recompute lower never relocks anything.
func (e *AchievementEngine) Evaluate(ev Event, state map[string]UnlockState, now time.Time) EvalResult {
	res := EvalResult{Updated: map[string]UnlockState{}}

	for _, def := range e.catalog.Achievements() {
		cur := state[def.ID]
		if cur.Unlocked {
			continue
		}
		if !matches(def, ev) {
			continue
		}

		if def.MaxProgress > 0 {
			cur.Progress++
			if cur.Progress >= def.MaxProgress {
				cur.Progress = def.MaxProgress
				cur.Unlocked = true
				cur.UnlockedAt = now
				res.NewlyUnlocked = append(res.NewlyUnlocked, def)
			}
			res.Updated[def.ID] = cur
			continue
		}

		cur.Unlocked = true
		cur.UnlockedAt = now
		res.Updated[def.ID] = cur
		res.NewlyUnlocked = append(res.NewlyUnlocked, def)
	}

	return res
}

// matches reports whether the event is relevant to the definition.
func matches(def *catalog.Achievement, ev Event) bool {
	switch def.Trigger {
	case catalog.TriggerFirstCompletion:
		return ev.Kind == EventFirstTaskOfKind && def.TaskKind == string(ev.TaskKind)
	case catalog.TriggerLevel:
		return ev.Kind == EventLevelCrossed && ev.NewLevel >= def.Level
	case catalog.TriggerTaskCount:
		if ev.Kind != EventTaskCompleted {
			return false
		}
		return def.Difficulty == "" || def.Difficulty == string(ev.Difficulty)
	case catalog.TriggerPurchase:
		return ev.Kind == EventItemPurchased
	case catalog.TriggerHabitCreated:
		return ev.Kind == EventHabitCreated
	default:
		return false
	}
}
