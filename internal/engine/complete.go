package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lifequest/internal/catalog"
	"lifequest/internal/storage"
)

const (
	// HPGainPositiveHabit is the flat HP regained on a positive habit
	// completion, clamped at max HP.
	HPGainPositiveHabit = 2
	// HPPenaltyNegativeHabit is the flat HP lost on a negative habit,
	// independent of difficulty, clamped at zero.
	HPPenaltyNegativeHabit = 10
)

// CompleteResult describes one completion transaction.
type CompleteResult struct {
	TaskID      int64
	Kind        TaskKind
	Reward      Reward
	HPDelta     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	TaskStreak  int
	Streak      int // global streak after the mutation

	Unlocked      []*catalog.Achievement
	Notifications []Notification
}

// ErrAlreadyCompleted marks a completion attempt on a finished daily/todo.
func ErrAlreadyCompleted(kind TaskKind, id int64) *Error {
	return &Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("%s %d is already completed", kind, id),
	}
}

// CompleteHabit scores a habit. Positive scoring grants the stored reward
// and a small HP gain; negative scoring costs a flat HP penalty and resets
// the habit streak. Either way a task-completed event reaches the
// achievement engine.
func (s *Service) CompleteHabit(ctx context.Context, id int64, positive bool) (*CompleteResult, error) {
	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := s.tasks.InTx(tx)
		task, err := getTask(ctx, tasks, id, TaskKindHabit)
		if err != nil {
			return err
		}

		state := s.state.InTx(tx)
		gs, err := s.getState(ctx, state)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		levelBefore := gs.Level

		r := &CompleteResult{TaskID: id, Kind: TaskKindHabit, LevelBefore: levelBefore}

		streak := task.Streak
		if positive {
			reward := Reward{XP: task.XPReward, Coins: task.CoinReward}
			gs.Coins += reward.Coins
			r.LevelUp = applyXP(gs, reward.XP)
			r.Reward = reward

			hpBefore := gs.HP
			gs.HP += HPGainPositiveHabit
			if gs.HP > gs.MaxHP {
				gs.HP = gs.MaxHP
			}
			r.HPDelta = gs.HP - hpBefore
			streak++
		} else {
			hpBefore := gs.HP
			gs.HP -= HPPenaltyNegativeHabit
			if gs.HP < 0 {
				gs.HP = 0
			}
			r.HPDelta = gs.HP - hpBefore
			streak = 0
		}
		if err := tasks.SetStreak(ctx, id, streak); err != nil {
			return err
		}
		r.TaskStreak = streak

		first := gs.HabitsDone == 0
		gs.HabitsDone++

		events := []Event{{Kind: EventTaskCompleted, TaskKind: TaskKindHabit, Difficulty: Difficulty(task.Difficulty)}}
		if first {
			events = append(events, Event{Kind: EventFirstTaskOfKind, TaskKind: TaskKindHabit})
		}
		if r.LevelUp {
			events = append(events, Event{Kind: EventLevelCrossed, NewLevel: gs.Level})
		}

		unlocked, err := s.evaluateEvents(ctx, s.achState.InTx(tx), gs, events, now)
		if err != nil {
			return err
		}
		r.Unlocked = unlocked

		if err := state.Update(ctx, gs); err != nil {
			return err
		}
		r.LevelAfter = gs.Level
		r.Streak = gs.Streak
		r.Notifications = completionNotifications(r, task.Title)
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CompleteDaily completes a daily for the current period, granting its
// stored reward and advancing both the daily's streak and the global streak.
func (s *Service) CompleteDaily(ctx context.Context, id int64) (*CompleteResult, error) {
	return s.completeScheduled(ctx, id, TaskKindDaily)
}

// CompleteTodo completes a one-off todo; the item is retired from active
// views from this point on.
func (s *Service) CompleteTodo(ctx context.Context, id int64) (*CompleteResult, error) {
	return s.completeScheduled(ctx, id, TaskKindTodo)
}

func (s *Service) completeScheduled(ctx context.Context, id int64, kind TaskKind) (*CompleteResult, error) {
	var res *CompleteResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		tasks := s.tasks.InTx(tx)
		task, err := getTask(ctx, tasks, id, kind)
		if err != nil {
			return err
		}
		if task.Completed {
			return ErrAlreadyCompleted(kind, id)
		}

		state := s.state.InTx(tx)
		gs, err := s.getState(ctx, state)
		if err != nil {
			return err
		}
		now := time.Now().UTC()

		r := &CompleteResult{TaskID: id, Kind: kind, LevelBefore: gs.Level}

		reward := Reward{XP: task.XPReward, Coins: task.CoinReward}
		gs.Coins += reward.Coins
		r.LevelUp = applyXP(gs, reward.XP)
		r.Reward = reward

		if err := tasks.MarkCompleted(ctx, id, now); err != nil {
			return err
		}

		var first bool
		switch kind {
		case TaskKindDaily:
			first = gs.DailiesDone == 0
			gs.DailiesDone++
			gs.Streak++
			r.TaskStreak = task.Streak + 1
			if err := tasks.SetStreak(ctx, id, r.TaskStreak); err != nil {
				return err
			}
		case TaskKindTodo:
			first = gs.TodosDone == 0
			gs.TodosDone++
		}

		events := []Event{{Kind: EventTaskCompleted, TaskKind: kind, Difficulty: Difficulty(task.Difficulty)}}
		if first {
			events = append(events, Event{Kind: EventFirstTaskOfKind, TaskKind: kind})
		}
		if r.LevelUp {
			events = append(events, Event{Kind: EventLevelCrossed, NewLevel: gs.Level})
		}

		unlocked, err := s.evaluateEvents(ctx, s.achState.InTx(tx), gs, events, now)
		if err != nil {
			return err
		}
		r.Unlocked = unlocked

		if err := state.Update(ctx, gs); err != nil {
			return err
		}
		r.LevelAfter = gs.Level
		r.Streak = gs.Streak
		r.Notifications = completionNotifications(r, task.Title)
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Kind == TaskKindTodo && s.reminders != nil {
		// A completed todo never reminds.
		s.reminders.Cancel(id)
	}
	return res, nil
}

// completionNotifications turns a completion result into structured
// notifications; the presentation layer decides how to render them.
func completionNotifications(r *CompleteResult, title string) []Notification {
	var out []Notification
	if r.Reward.XP > 0 {
		out = append(out, Notification{
			Category: NotifyXP, Severity: SeveritySuccess,
			Title:  title,
			Detail: fmt.Sprintf("+%d XP", r.Reward.XP),
		})
	}
	if r.Reward.Coins > 0 {
		out = append(out, Notification{
			Category: NotifyCoins, Severity: SeveritySuccess,
			Title:  title,
			Detail: fmt.Sprintf("+%d coins", r.Reward.Coins),
		})
	}
	if r.HPDelta < 0 {
		out = append(out, Notification{
			Category: NotifyHP, Severity: SeverityWarning,
			Title:  title,
			Detail: fmt.Sprintf("%d HP", r.HPDelta),
		})
	} else if r.HPDelta > 0 {
		out = append(out, Notification{
			Category: NotifyHP, Severity: SeverityInfo,
			Title:  title,
			Detail: fmt.Sprintf("+%d HP", r.HPDelta),
		})
	}
	if r.Kind != TaskKindTodo && r.TaskStreak > 1 {
		out = append(out, Notification{
			Category: NotifyStreak, Severity: SeverityInfo,
			Title:  title,
			Detail: fmt.Sprintf("streak %d", r.TaskStreak),
		})
	}
	if r.LevelUp {
		out = append(out, Notification{
			Category: NotifyLevelUp, Severity: SeveritySuccess,
			Title:  "Level up",
			Detail: fmt.Sprintf("reached level %d", r.LevelAfter),
		})
	}
	for _, a := range r.Unlocked {
		out = append(out, Notification{
			Category: NotifyAchievement, Severity: SeveritySuccess,
			Title:  a.Title,
			Detail: a.Description,
		})
	}
	return out
}
