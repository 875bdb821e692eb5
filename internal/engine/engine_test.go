package engine

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"lifequest/internal/catalog"
	"lifequest/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(db, catalog.Builtin(), logger)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setState(t *testing.T, svc *Service, mut func(gs *storage.GameState)) {
	t.Helper()
	ctx := context.Background()
	gs, err := svc.StateRepo().GetOrCreate(ctx, storage.MainUserKey)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	mut(gs)
	if err := svc.StateRepo().Update(ctx, gs); err != nil {
		t.Fatalf("update state: %v", err)
	}
}

func getGameState(t *testing.T, svc *Service) *storage.GameState {
	t.Helper()
	gs, err := svc.StateRepo().GetOrCreate(context.Background(), storage.MainUserKey)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	return gs
}

func TestPositiveHabitCompletion(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddHabit(ctx, AddHabitInput{Title: "Stretch", Difficulty: DifficultyMedium, Positive: true})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if created.Reward != (Reward{XP: 15, Coins: 3}) {
		t.Fatalf("frozen reward=%+v, want {15 3}", created.Reward)
	}

	setState(t, svc, func(gs *storage.GameState) { gs.HP = 85 })

	res, err := svc.CompleteHabit(ctx, created.TaskID, true)
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if res.Reward != (Reward{XP: 15, Coins: 3}) {
		t.Fatalf("payout=%+v, want the frozen reward", res.Reward)
	}
	if res.HPDelta != 2 {
		t.Fatalf("HPDelta=%d, want 2", res.HPDelta)
	}
	if res.TaskStreak != 1 {
		t.Fatalf("TaskStreak=%d, want 1", res.TaskStreak)
	}
	if !containsID(res.Unlocked, "first-habit") {
		t.Fatalf("first completion did not unlock first-habit: %v", ids(res.Unlocked))
	}

	gs := getGameState(t, svc)
	if gs.HP != 87 {
		t.Fatalf("HP=%d, want 87", gs.HP)
	}
	if gs.TotalXP != 15 {
		t.Fatalf("TotalXP=%d, want 15", gs.TotalXP)
	}
	// Task coins plus the first-habit unlock reward, credited once.
	if gs.Coins != 3+5 {
		t.Fatalf("Coins=%d, want 8", gs.Coins)
	}
}

func TestNegativeHabitClampsHP(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddHabit(ctx, AddHabitInput{Title: "Doomscroll", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	setState(t, svc, func(gs *storage.GameState) { gs.HP = 5 })

	res, err := svc.CompleteHabit(ctx, created.TaskID, false)
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if res.Reward != (Reward{}) {
		t.Fatalf("negative scoring paid out %+v", res.Reward)
	}
	if res.HPDelta != -5 {
		t.Fatalf("HPDelta=%d, want -5 (clamped)", res.HPDelta)
	}
	if res.TaskStreak != 0 {
		t.Fatalf("TaskStreak=%d, want reset to 0", res.TaskStreak)
	}
	if gs := getGameState(t, svc); gs.HP != 0 {
		t.Fatalf("HP=%d, want 0", gs.HP)
	}
}

func TestPositiveHabitHPCap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddHabit(ctx, AddHabitInput{Title: "Water", Difficulty: DifficultyEasy, Positive: true})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	res, err := svc.CompleteHabit(ctx, created.TaskID, true)
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if res.HPDelta != 0 {
		t.Fatalf("HPDelta=%d, want 0 at max HP", res.HPDelta)
	}
	if gs := getGameState(t, svc); gs.HP != gs.MaxHP {
		t.Fatalf("HP=%d, want max %d", gs.HP, gs.MaxHP)
	}
}

func TestDailyCompletionOncePerPeriod(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddDaily(ctx, AddDailyInput{Title: "Journal", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("AddDaily: %v", err)
	}

	res, err := svc.CompleteDaily(ctx, created.TaskID)
	if err != nil {
		t.Fatalf("CompleteDaily: %v", err)
	}
	if res.TaskStreak != 1 || res.Streak != 1 {
		t.Fatalf("streaks=%d/%d, want 1/1", res.TaskStreak, res.Streak)
	}

	if _, err := svc.CompleteDaily(ctx, created.TaskID); !IsCode(err, CodeInvalidInput) {
		t.Fatalf("second completion: got %v, want INVALID_INPUT", err)
	}

	// The failed attempt must not have moved anything.
	gs := getGameState(t, svc)
	if gs.TotalXP != 10 || gs.Streak != 1 {
		t.Fatalf("state moved on rejected completion: xp=%d streak=%d", gs.TotalXP, gs.Streak)
	}
}

func TestCompletedTodoLeavesActiveView(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddTodo(ctx, AddTodoInput{Title: "File taxes", Difficulty: DifficultyHard, Priority: PriorityHigh})
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	if created.Reward != (Reward{XP: 37, Coins: 7}) {
		t.Fatalf("todo reward=%+v, want {37 7}", created.Reward)
	}

	if _, err := svc.CompleteTodo(ctx, created.TaskID); err != nil {
		t.Fatalf("CompleteTodo: %v", err)
	}

	views, err := svc.ListTasks(ctx, TaskKindTodo)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	for _, v := range views {
		if v.ID == created.TaskID {
			t.Fatalf("completed todo still in active view")
		}
	}

	if _, err := svc.CompleteTodo(ctx, created.TaskID); !IsCode(err, CodeInvalidInput) {
		t.Fatalf("re-complete: got %v, want INVALID_INPUT", err)
	}
}

func TestOverdueDerivedAtReadTime(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	if _, err := svc.AddTodo(ctx, AddTodoInput{Title: "Renew passport", Difficulty: DifficultyEasy, Priority: PriorityLow, DueDate: &past}); err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	views, err := svc.ListTasks(ctx, TaskKindTodo)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(views) != 1 || !views[0].Overdue {
		t.Fatalf("views=%+v, want one overdue todo", views)
	}
}

func TestCompleteUnknownTask(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CompleteTodo(ctx, 9999); !IsNotFound(err) {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}

	// A habit id is not a todo id.
	h, err := svc.AddHabit(ctx, AddHabitInput{Title: "Walk", Difficulty: DifficultyEasy, Positive: true})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if _, err := svc.CompleteTodo(ctx, h.TaskID); !IsNotFound(err) {
		t.Fatalf("cross-kind completion: got %v, want NOT_FOUND", err)
	}
}

func TestLevelCrossUnlocksAchievement(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddHabit(ctx, AddHabitInput{Title: "Run", Difficulty: DifficultyMedium, Positive: true})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	// 15 XP away from the level 5 threshold at 2500.
	setState(t, svc, func(gs *storage.GameState) { gs.TotalXP = 2490 })

	res, err := svc.CompleteHabit(ctx, created.TaskID, true)
	if err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if !res.LevelUp {
		t.Fatalf("expected a level-up")
	}
	if res.LevelBefore != 4 || res.LevelAfter != 5 {
		t.Fatalf("levels %d->%d, want 4->5", res.LevelBefore, res.LevelAfter)
	}
	if !containsID(res.Unlocked, "getting-warm") {
		t.Fatalf("level 5 did not unlock getting-warm: %v", ids(res.Unlocked))
	}
}

func TestBuyShopItem(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setState(t, svc, func(gs *storage.GameState) { gs.Coins = 342 })

	res, err := svc.BuyShopItem(ctx, "color-ember")
	if err != nil {
		t.Fatalf("BuyShopItem: %v", err)
	}
	if res.AlreadyOwned {
		t.Fatalf("fresh purchase flagged AlreadyOwned")
	}
	if res.CoinsRemaining != 292 {
		t.Fatalf("CoinsRemaining=%d, want 292", res.CoinsRemaining)
	}
	if !containsID(res.Unlocked, "first-purchase") {
		t.Fatalf("first purchase did not unlock first-purchase: %v", ids(res.Unlocked))
	}

	// Buying again is a no-op: no coins move, nothing unlocks.
	res, err = svc.BuyShopItem(ctx, "color-ember")
	if err != nil {
		t.Fatalf("repeat BuyShopItem: %v", err)
	}
	if !res.AlreadyOwned {
		t.Fatalf("repeat purchase not flagged AlreadyOwned")
	}
	if gs := getGameState(t, svc); gs.Coins != 292 {
		t.Fatalf("Coins=%d after no-op, want 292", gs.Coins)
	}
}

func TestBuyShopItemReportsAllGaps(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// frame-mythic wants 500 coins and an achievement; both are missing.
	_, err := svc.BuyShopItem(ctx, "frame-mythic")
	if !IsRequirementsNotMet(err) {
		t.Fatalf("got %v, want REQUIREMENTS_NOT_MET", err)
	}
	if missing := MissingRequirements(err); len(missing) != 2 {
		t.Fatalf("missing=%v, want both gaps listed", missing)
	}
	if gs := getGameState(t, svc); gs.Coins != 0 {
		t.Fatalf("failed purchase moved coins: %d", gs.Coins)
	}

	if _, err := svc.BuyShopItem(ctx, "does-not-exist"); !IsNotFound(err) {
		t.Fatalf("unknown item: got %v, want NOT_FOUND", err)
	}
}

func TestUpdateProfileRequiresOwnership(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	err := svc.UpdateProfile(ctx, ProfileInput{DisplayName: "Ash", Avatar: "avatar-fox"})
	if !IsRequirementsNotMet(err) {
		t.Fatalf("unowned avatar: got %v, want REQUIREMENTS_NOT_MET", err)
	}

	setState(t, svc, func(gs *storage.GameState) { gs.Coins = 100 })
	if _, err := svc.BuyShopItem(ctx, "avatar-fox"); err != nil {
		t.Fatalf("BuyShopItem: %v", err)
	}
	if err := svc.UpdateProfile(ctx, ProfileInput{DisplayName: "Ash", Avatar: "avatar-fox"}); err != nil {
		t.Fatalf("UpdateProfile after purchase: %v", err)
	}

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Profile.DisplayName != "Ash" || snap.Profile.Avatar != "avatar-fox" {
		t.Fatalf("profile=%+v, want Ash with avatar-fox", snap.Profile)
	}

	// Category mismatch: a frame id is not an avatar.
	err = svc.UpdateProfile(ctx, ProfileInput{Avatar: "frame-bronze"})
	if !IsRequirementsNotMet(err) {
		t.Fatalf("wrong category: got %v, want REQUIREMENTS_NOT_MET", err)
	}
}

func TestToggleSettingGate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	err := svc.ToggleSetting(ctx, SettingCompactLayout, true)
	if !IsRequirementsNotMet(err) {
		t.Fatalf("locked toggle: got %v, want REQUIREMENTS_NOT_MET", err)
	}

	// Turning a locked setting off is always allowed.
	if err := svc.ToggleSetting(ctx, SettingCompactLayout, false); err != nil {
		t.Fatalf("toggle off while locked: %v", err)
	}

	setState(t, svc, func(gs *storage.GameState) { gs.TotalXP = 400 }) // level 2
	if err := svc.ToggleSetting(ctx, SettingCompactLayout, true); err != nil {
		t.Fatalf("toggle after unlock: %v", err)
	}

	views, err := svc.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	found := false
	for _, v := range views {
		if v.Key == SettingCompactLayout {
			found = true
			if v.Locked || !v.Enabled {
				t.Fatalf("setting view=%+v, want unlocked and enabled", v)
			}
		}
	}
	if !found {
		t.Fatalf("compact-layout missing from settings view")
	}

	if err := svc.ToggleSetting(ctx, "bogus", true); !IsNotFound(err) {
		t.Fatalf("unknown setting: got %v, want NOT_FOUND", err)
	}
}

func TestUpdateRecomputesFrozenReward(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddTodo(ctx, AddTodoInput{Title: "Plan trip", Difficulty: DifficultyEasy, Priority: PriorityLow})
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	diff := DifficultyHard
	prio := PriorityHigh
	if err := svc.UpdateTodo(ctx, created.TaskID, UpdateTaskInput{Difficulty: &diff, Priority: &prio}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}

	task, err := svc.TaskRepo().Get(ctx, created.TaskID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if task.XPReward != 37 || task.CoinReward != 7 {
		t.Fatalf("recomputed reward=%d/%d, want 37/7", task.XPReward, task.CoinReward)
	}

	// A title-only edit leaves the reward alone.
	title := "Plan the trip"
	if err := svc.UpdateTodo(ctx, created.TaskID, UpdateTaskInput{Title: &title}); err != nil {
		t.Fatalf("title edit: %v", err)
	}
	task, _ = svc.TaskRepo().Get(ctx, created.TaskID)
	if task.XPReward != 37 {
		t.Fatalf("title edit changed reward to %d", task.XPReward)
	}

	// Kind-mismatched fields are rejected.
	positive := true
	if err := svc.UpdateTodo(ctx, created.TaskID, UpdateTaskInput{Positive: &positive}); !IsCode(err, CodeInvalidInput) {
		t.Fatalf("polarity on todo: got %v, want INVALID_INPUT", err)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddDaily(ctx, AddDailyInput{Title: "Tidy desk", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("AddDaily: %v", err)
	}
	if err := svc.DeleteDaily(ctx, created.TaskID); err != nil {
		t.Fatalf("DeleteDaily: %v", err)
	}
	if err := svc.DeleteDaily(ctx, created.TaskID); !IsNotFound(err) {
		t.Fatalf("double delete: got %v, want NOT_FOUND", err)
	}
}

func TestAddTaskValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.AddHabit(ctx, AddHabitInput{Title: "   ", Difficulty: DifficultyEasy}); !IsCode(err, CodeInvalidInput) {
		t.Fatalf("blank title: got %v, want INVALID_INPUT", err)
	}
	if _, err := svc.AddDaily(ctx, AddDailyInput{Title: "X", Difficulty: "brutal"}); !IsCode(err, CodeInvalidInput) {
		t.Fatalf("bad difficulty: got %v, want INVALID_INPUT", err)
	}
	if _, err := svc.AddTodo(ctx, AddTodoInput{Title: "X", Difficulty: DifficultyEasy, Priority: "asap"}); !IsCode(err, CodeInvalidInput) {
		t.Fatalf("bad priority: got %v, want INVALID_INPUT", err)
	}
}

func TestHabitCreationAchievement(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddHabit(ctx, AddHabitInput{Title: "Read", Difficulty: DifficultyEasy, Positive: true})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if !containsID(created.Unlocked, "habit-former") {
		t.Fatalf("first habit did not unlock habit-former: %v", ids(created.Unlocked))
	}

	second, err := svc.AddHabit(ctx, AddHabitInput{Title: "Write", Difficulty: DifficultyEasy, Positive: true})
	if err != nil {
		t.Fatalf("second AddHabit: %v", err)
	}
	if len(second.Unlocked) != 0 {
		t.Fatalf("second habit unlocked %v, want none", ids(second.Unlocked))
	}
}

func TestStateRecomputeMatchesIncremental(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	created, err := svc.AddHabit(ctx, AddHabitInput{Title: "Stairs", Difficulty: DifficultyHard, Positive: true})
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	for i := 0; i < 6; i++ {
		if _, err := svc.CompleteHabit(ctx, created.TaskID, true); err != nil {
			t.Fatalf("complete #%d: %v", i+1, err)
		}
	}

	gs := getGameState(t, svc)
	if gs.TotalXP != 120 {
		t.Fatalf("TotalXP=%d, want 120", gs.TotalXP)
	}
	// The stored level always equals the curve applied to the total.
	if gs.Level != LevelForTotalXP(gs.TotalXP) {
		t.Fatalf("stored level %d != recomputed %d", gs.Level, LevelForTotalXP(gs.TotalXP))
	}
	p := ProgressWithinLevel(gs.TotalXP, gs.Level)
	if p.Current != 20 || p.Max != 300 {
		t.Fatalf("progress=%+v, want {20 300}", p)
	}
}

func containsID(defs []*catalog.Achievement, id string) bool {
	for _, d := range defs {
		if d.ID == id {
			return true
		}
	}
	return false
}
