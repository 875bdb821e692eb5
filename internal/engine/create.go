package engine

import (
	"context"
	"database/sql"
	"time"

	"lifequest/internal/catalog"
	"lifequest/internal/storage"
)

type AddHabitInput struct {
	Title      string
	Notes      string
	Difficulty Difficulty
	Positive   bool
}

type AddDailyInput struct {
	Title      string
	Notes      string
	Difficulty Difficulty
	DueTime    *time.Time
}

type AddTodoInput struct {
	Title      string
	Notes      string
	Difficulty Difficulty
	Priority   Priority
	DueDate    *time.Time
}

// CreateResult reports a task creation. The reward is frozen on the task
// row; completion pays out exactly this value.
type CreateResult struct {
	TaskID        int64
	Kind          TaskKind
	Reward        Reward
	Unlocked      []*catalog.Achievement
	Notifications []Notification
}

// AddHabit creates a habit and fires the habit-created event.
func (s *Service) AddHabit(ctx context.Context, in AddHabitInput) (*CreateResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	reward, err := ComputeReward(TaskKindHabit, in.Difficulty, "")
	if err != nil {
		return nil, err
	}

	var res *CreateResult
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		id, err := s.tasks.InTx(tx).Insert(ctx, storage.TaskInsert{
			Kind:       string(TaskKindHabit),
			Title:      title,
			Notes:      optional(in.Notes),
			Difficulty: string(in.Difficulty),
			XPReward:   reward.XP,
			CoinReward: reward.Coins,
			Positive:   in.Positive,
		})
		if err != nil {
			return err
		}

		state := s.state.InTx(tx)
		gs, err := s.getState(ctx, state)
		if err != nil {
			return err
		}
		unlocked, err := s.evaluateEvents(ctx, s.achState.InTx(tx), gs,
			[]Event{{Kind: EventHabitCreated}}, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := state.Update(ctx, gs); err != nil {
			return err
		}

		res = &CreateResult{TaskID: id, Kind: TaskKindHabit, Reward: reward, Unlocked: unlocked}
		res.Notifications = unlockNotifications(unlocked)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AddDaily creates a recurring daily.
func (s *Service) AddDaily(ctx context.Context, in AddDailyInput) (*CreateResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	reward, err := ComputeReward(TaskKindDaily, in.Difficulty, "")
	if err != nil {
		return nil, err
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Kind:       string(TaskKindDaily),
		Title:      title,
		Notes:      optional(in.Notes),
		Difficulty: string(in.Difficulty),
		XPReward:   reward.XP,
		CoinReward: reward.Coins,
		DueAt:      in.DueTime,
	})
	if err != nil {
		return nil, err
	}
	s.scheduleReminder(id, title, in.DueTime)
	return &CreateResult{TaskID: id, Kind: TaskKindDaily, Reward: reward}, nil
}

// AddTodo creates a one-off todo; the priority tier scales its reward.
func (s *Service) AddTodo(ctx context.Context, in AddTodoInput) (*CreateResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	reward, err := ComputeReward(TaskKindTodo, in.Difficulty, in.Priority)
	if err != nil {
		return nil, err
	}

	priority := string(in.Priority)
	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Kind:       string(TaskKindTodo),
		Title:      title,
		Notes:      optional(in.Notes),
		Difficulty: string(in.Difficulty),
		Priority:   &priority,
		XPReward:   reward.XP,
		CoinReward: reward.Coins,
		DueAt:      in.DueDate,
	})
	if err != nil {
		return nil, err
	}
	s.scheduleReminder(id, title, in.DueDate)
	return &CreateResult{TaskID: id, Kind: TaskKindTodo, Reward: reward}, nil
}

func (s *Service) scheduleReminder(taskID int64, title string, due *time.Time) {
	if s.reminders == nil || due == nil {
		return
	}
	s.reminders.Schedule(taskID, title, *due)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func unlockNotifications(unlocked []*catalog.Achievement) []Notification {
	var out []Notification
	for _, a := range unlocked {
		out = append(out, Notification{
			Category: NotifyAchievement, Severity: SeveritySuccess,
			Title:  a.Title,
			Detail: a.Description,
		})
	}
	return out
}
