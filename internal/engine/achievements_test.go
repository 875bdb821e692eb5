package engine

import (
	"testing"
	"time"

	"lifequest/internal/catalog"
)

func TestAchievementFirstCompletionIdempotent(t *testing.T) {
	eng := NewAchievementEngine(catalog.Builtin())
	state := map[string]UnlockState{}
	now := time.Now().UTC()

	ev := Event{Kind: EventFirstTaskOfKind, TaskKind: TaskKindHabit}
	res := eng.Evaluate(ev, state, now)
	if len(res.NewlyUnlocked) != 1 || res.NewlyUnlocked[0].ID != "first-habit" {
		t.Fatalf("first event: unlocked %v, want [first-habit]", ids(res.NewlyUnlocked))
	}
	for id, us := range res.Updated {
		state[id] = us
	}

	// Replaying the same event changes nothing.
	res = eng.Evaluate(ev, state, now)
	if len(res.NewlyUnlocked) != 0 {
		t.Fatalf("replay: unlocked %v, want none", ids(res.NewlyUnlocked))
	}
	if _, touched := res.Updated["first-habit"]; touched {
		t.Fatalf("replay touched already-unlocked state")
	}
}

func TestAchievementCounterUnlocksAtMax(t *testing.T) {
	eng := NewAchievementEngine(catalog.Builtin())
	state := map[string]UnlockState{}
	now := time.Now().UTC()

	ev := Event{Kind: EventTaskCompleted, TaskKind: TaskKindTodo, Difficulty: DifficultyHard}
	for i := 1; i <= 4; i++ {
		res := eng.Evaluate(ev, state, now)
		for _, def := range res.NewlyUnlocked {
			if def.ID == "no-pain-no-gain" {
				t.Fatalf("unlocked after %d hard tasks, want 5", i)
			}
		}
		for id, us := range res.Updated {
			state[id] = us
		}
	}
	if got := state["no-pain-no-gain"].Progress; got != 4 {
		t.Fatalf("progress=%d, want 4", got)
	}

	res := eng.Evaluate(ev, state, now)
	found := false
	for _, def := range res.NewlyUnlocked {
		if def.ID == "no-pain-no-gain" {
			found = true
		}
	}
	if !found {
		t.Fatalf("5th hard task did not unlock, got %v", ids(res.NewlyUnlocked))
	}
	if got := res.Updated["no-pain-no-gain"]; !got.Unlocked || got.Progress != 5 {
		t.Fatalf("unlock state=%+v, want unlocked at progress 5", got)
	}
}

func TestAchievementLevelEventMatchesAllReached(t *testing.T) {
	eng := NewAchievementEngine(catalog.Builtin())
	now := time.Now().UTC()

	// Crossing straight to level 12 unlocks every level gate at or below it.
	res := eng.Evaluate(Event{Kind: EventLevelCrossed, NewLevel: 12}, map[string]UnlockState{}, now)
	got := ids(res.NewlyUnlocked)
	want := []string{"getting-warm", "xp-master"}
	if len(got) != len(want) {
		t.Fatalf("unlocked %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unlocked %v, want %v (catalog order)", got, want)
		}
	}
}

func TestAchievementInputStateNotMutated(t *testing.T) {
	eng := NewAchievementEngine(catalog.Builtin())
	state := map[string]UnlockState{"productive": {Progress: 3}}

	eng.Evaluate(Event{Kind: EventTaskCompleted, TaskKind: TaskKindHabit}, state, time.Now().UTC())
	if state["productive"].Progress != 3 {
		t.Fatalf("input state mutated: progress=%d, want 3", state["productive"].Progress)
	}
}

func ids(defs []*catalog.Achievement) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}
