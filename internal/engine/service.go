package engine

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"lifequest/internal/catalog"
	"lifequest/internal/storage"
)

// Service is the progression store: the sole mutator of game state. Every
// public operation validates before mutating and runs inside one SQL
// transaction, so no operation observes a partially-applied state.
type Service struct {
	db           *sql.DB
	catalog      *catalog.Catalog
	achievements *AchievementEngine

	state    *storage.StateRepo
	profile  *storage.ProfileRepo
	tasks    *storage.TaskRepo
	achState *storage.AchievementRepo
	shop     *storage.ShopRepo
	settings *storage.SettingsRepo

	reminders *ReminderScheduler
	logger    *slog.Logger
	userKey   string
}

func NewService(db *sql.DB, cat *catalog.Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		db:           db,
		catalog:      cat,
		achievements: NewAchievementEngine(cat),
		state:        storage.NewStateRepo(db),
		profile:      storage.NewProfileRepo(db),
		tasks:        storage.NewTaskRepo(db),
		achState:     storage.NewAchievementRepo(db),
		shop:         storage.NewShopRepo(db),
		settings:     storage.NewSettingsRepo(db),
		logger:       logger,
		userKey:      storage.MainUserKey,
	}
}

// SetReminderScheduler attaches the reminder scheduler. Without one,
// due-time reminders are simply not scheduled.
func (s *Service) SetReminderScheduler(r *ReminderScheduler) {
	s.reminders = r
}

func (s *Service) Catalog() *catalog.Catalog           { return s.catalog }
func (s *Service) TaskRepo() *storage.TaskRepo         { return s.tasks }
func (s *Service) StateRepo() *storage.StateRepo       { return s.state }
func (s *Service) SettingsRepo() *storage.SettingsRepo { return s.settings }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrInvalidInput("title", title)
	}
	return t, nil
}

// getState loads the game state, healing the derived level if a stored row
// predates a curve change.
func (s *Service) getState(ctx context.Context, repo *storage.StateRepo) (*storage.GameState, error) {
	gs, err := repo.GetOrCreate(ctx, s.userKey)
	if err != nil {
		return nil, err
	}
	computed := LevelForTotalXP(gs.TotalXP)
	if gs.Level != computed {
		gs.Level = computed
		if err := repo.Update(ctx, gs); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

// getTask fetches a task and checks its kind.
func getTask(ctx context.Context, repo *storage.TaskRepo, id int64, kind TaskKind) (*storage.Task, error) {
	t, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Kind != string(kind) {
		return nil, ErrNotFound(string(kind), id)
	}
	return t, nil
}

// applyXP adds xp to the total and recomputes the level. Returns true when
// the mutation strictly raised the level.
func applyXP(gs *storage.GameState, xp int) (levelUp bool) {
	before := gs.Level
	gs.TotalXP += xp
	gs.Level = LevelForTotalXP(gs.TotalXP)
	return gs.Level > before
}

// evaluateEvents runs the achievement engine over the events of one store
// operation, persists changed unlock state, and credits unlock coin rewards
// to gs exactly once each. Returns unlocks in catalog order.
func (s *Service) evaluateEvents(ctx context.Context, repo *storage.AchievementRepo, gs *storage.GameState, events []Event, now time.Time) ([]*catalog.Achievement, error) {
	stored, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	state := make(map[string]UnlockState, len(stored))
	for id, st := range stored {
		us := UnlockState{Unlocked: st.Unlocked, Progress: st.Progress}
		if st.UnlockedAt != nil {
			us.UnlockedAt = *st.UnlockedAt
		}
		state[id] = us
	}

	var unlocked []*catalog.Achievement
	for _, ev := range events {
		res := s.achievements.Evaluate(ev, state, now)
		for id, us := range res.Updated {
			state[id] = us
			row := storage.AchievementState{AchievementID: id, Unlocked: us.Unlocked, Progress: us.Progress}
			if us.Unlocked {
				at := us.UnlockedAt
				row.UnlockedAt = &at
			}
			if err := repo.Upsert(ctx, row); err != nil {
				return nil, err
			}
		}
		for _, def := range res.NewlyUnlocked {
			unlocked = append(unlocked, def)
			if def.CoinReward > 0 {
				gs.Coins += def.CoinReward
			}
			s.logger.Info("achievement unlocked",
				slog.String("id", def.ID),
				slog.Int("coin_reward", def.CoinReward),
			)
		}
	}
	return unlocked, nil
}

// unlockedSet loads the unlocked-achievement set for entitlement checks.
func (s *Service) unlockedSet(ctx context.Context, repo *storage.AchievementRepo) (map[string]bool, error) {
	stored, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(stored))
	for id, st := range stored {
		if st.Unlocked {
			out[id] = true
		}
	}
	return out, nil
}

// IsNotFound reports whether err is a NOT_FOUND engine error.
func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }

// IsRequirementsNotMet reports whether err is a REQUIREMENTS_NOT_MET engine
// error; the Missing field on the unwrapped *Error lists the gaps.
func IsRequirementsNotMet(err error) bool { return IsCode(err, CodeRequirementsNotMet) }

// MissingRequirements extracts the unmet-requirement list, if any.
func MissingRequirements(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Missing
	}
	return nil
}
