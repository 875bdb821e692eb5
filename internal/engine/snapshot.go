package engine

import (
	"context"
	"time"

	"lifequest/internal/catalog"
	"lifequest/internal/storage"
)

// Snapshot is a read-only view of the full progression state for the
// presentation layer. Writes still have to go through the store operations.
type Snapshot struct {
	State        storage.GameState
	Profile      storage.Profile
	Progress     LevelProgress
	Entitlements []Entitlement

	AchievementsUnlocked int
	AchievementsTotal    int
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	gs, err := s.getState(ctx, s.state)
	if err != nil {
		return nil, err
	}
	profile, err := s.profile.GetOrCreate(ctx, s.userKey)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockedSet(ctx, s.achState)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		State:                *gs,
		Profile:              *profile,
		Progress:             ProgressWithinLevel(gs.TotalXP, gs.Level),
		Entitlements:         Entitlements(gs.Level, unlocked),
		AchievementsUnlocked: len(unlocked),
		AchievementsTotal:    len(s.catalog.Achievements()),
	}, nil
}

// TaskView is a task row plus its level-adjusted display reward.
type TaskView struct {
	storage.Task
	DisplayXP    int
	DisplayCoins int
	// Overdue is derived at read time, never stored.
	Overdue bool
}

// ListTasks returns the active view of one task kind: completed todos are
// excluded, everything else is visible. Display rewards are scaled for the
// current level; stored rewards are untouched.
func (s *Service) ListTasks(ctx context.Context, kind TaskKind) ([]TaskView, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidInput("task kind", string(kind))
	}
	gs, err := s.getState(ctx, s.state)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByKind(ctx, string(kind), true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, TaskView{
			Task:         t,
			DisplayXP:    DisplayReward(t.XPReward, gs.Level),
			DisplayCoins: DisplayReward(t.CoinReward, gs.Level),
			Overdue:      !t.Completed && t.DueAt != nil && t.DueAt.Before(now),
		})
	}
	return out, nil
}

// AchievementView pairs a catalog definition with its unlock state.
type AchievementView struct {
	*catalog.Achievement
	Unlocked   bool
	UnlockedAt *time.Time
	Progress   int
}

// Achievements returns every achievement in catalog order with its state.
func (s *Service) Achievements(ctx context.Context) ([]AchievementView, error) {
	stored, err := s.achState.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]AchievementView, 0, len(s.catalog.Achievements()))
	for _, def := range s.catalog.Achievements() {
		v := AchievementView{Achievement: def}
		if st, ok := stored[def.ID]; ok {
			v.Unlocked = st.Unlocked
			v.UnlockedAt = st.UnlockedAt
			v.Progress = st.Progress
		}
		out = append(out, v)
	}
	return out, nil
}

// ShopView pairs a catalog item with ownership and gate state for display.
// The purchase flow re-validates everything; this is advisory only.
type ShopView struct {
	*catalog.ShopItem
	Owned      bool
	Affordable bool
	XPMet      bool
	AchMet     bool
}

// ShopItems returns the shop catalog annotated for the current state.
func (s *Service) ShopItems(ctx context.Context) ([]ShopView, error) {
	gs, err := s.getState(ctx, s.state)
	if err != nil {
		return nil, err
	}
	owned, err := s.shop.Owned(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockedSet(ctx, s.achState)
	if err != nil {
		return nil, err
	}

	out := make([]ShopView, 0, len(s.catalog.Items()))
	for _, item := range s.catalog.Items() {
		_, isOwned := owned[item.ID]
		out = append(out, ShopView{
			ShopItem:   item,
			Owned:      isOwned,
			Affordable: gs.Coins >= item.Price,
			XPMet:      item.XPRequirement == 0 || gs.TotalXP >= item.XPRequirement,
			AchMet:     item.RequiredAchievement == "" || unlocked[item.RequiredAchievement],
		})
	}
	return out, nil
}

// Settings returns the stored toggle values merged with their entitlements.
type SettingView struct {
	Entitlement
	Enabled bool
}

func (s *Service) Settings(ctx context.Context) ([]SettingView, error) {
	gs, err := s.getState(ctx, s.state)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockedSet(ctx, s.achState)
	if err != nil {
		return nil, err
	}
	values, err := s.settings.All(ctx)
	if err != nil {
		return nil, err
	}

	ents := Entitlements(gs.Level, unlocked)
	out := make([]SettingView, 0, len(ents))
	for _, e := range ents {
		out = append(out, SettingView{Entitlement: e, Enabled: values[e.Key]})
	}
	return out, nil
}
