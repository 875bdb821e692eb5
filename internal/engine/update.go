package engine

import (
	"context"
	"time"

	"lifequest/internal/storage"
)

// UpdateTaskInput is a partial merge; nil fields keep their stored value.
// Supplying a new difficulty (or, for todos, priority) recomputes the frozen
// reward with the same floor rule used at creation.
type UpdateTaskInput struct {
	Title      *string
	Notes      *string
	Difficulty *Difficulty
	Priority   *Priority
	Positive   *bool
	DueAt      *time.Time
}

// UpdateHabit merges the provided fields into a habit.
func (s *Service) UpdateHabit(ctx context.Context, id int64, in UpdateTaskInput) error {
	return s.updateTask(ctx, id, TaskKindHabit, in)
}

// UpdateDaily merges the provided fields into a daily.
func (s *Service) UpdateDaily(ctx context.Context, id int64, in UpdateTaskInput) error {
	return s.updateTask(ctx, id, TaskKindDaily, in)
}

// UpdateTodo merges the provided fields into a todo.
func (s *Service) UpdateTodo(ctx context.Context, id int64, in UpdateTaskInput) error {
	return s.updateTask(ctx, id, TaskKindTodo, in)
}

func (s *Service) updateTask(ctx context.Context, id int64, kind TaskKind, in UpdateTaskInput) error {
	task, err := getTask(ctx, s.tasks, id, kind)
	if err != nil {
		return err
	}

	if in.Priority != nil && kind != TaskKindTodo {
		return ErrInvalidInput("priority", "only todos have a priority")
	}
	if in.Positive != nil && kind != TaskKindHabit {
		return ErrInvalidInput("polarity", "only habits have a polarity")
	}

	up := storage.TaskUpdate{Notes: in.Notes, DueAt: in.DueAt}
	if in.Title != nil {
		title, err := normalizeTitle(*in.Title)
		if err != nil {
			return err
		}
		up.Title = &title
	}
	if in.Positive != nil {
		up.Positive = in.Positive
	}

	if in.Difficulty != nil || in.Priority != nil {
		difficulty := Difficulty(task.Difficulty)
		if in.Difficulty != nil {
			difficulty = *in.Difficulty
		}
		priority := Priority("")
		if kind == TaskKindTodo {
			if task.Priority != nil {
				priority = Priority(*task.Priority)
			}
			if in.Priority != nil {
				priority = *in.Priority
			}
		}
		reward, err := ComputeReward(kind, difficulty, priority)
		if err != nil {
			return err
		}
		d := string(difficulty)
		up.Difficulty = &d
		if kind == TaskKindTodo {
			p := string(priority)
			up.Priority = &p
		}
		up.XPReward = &reward.XP
		up.CoinReward = &reward.Coins
	}

	if err := s.tasks.Update(ctx, id, up); err != nil {
		return err
	}

	// A changed title or due time invalidates any pending reminder.
	if s.reminders != nil {
		s.reminders.Cancel(id)
		if kind != TaskKindHabit {
			updated, err := s.tasks.Get(ctx, id)
			if err == nil && updated != nil && updated.DueAt != nil && !updated.Completed {
				s.reminders.Schedule(id, updated.Title, *updated.DueAt)
			}
		}
	}
	return nil
}

// DeleteHabit removes a habit. Achievement progress earned through it is
// never decremented retroactively.
func (s *Service) DeleteHabit(ctx context.Context, id int64) error {
	return s.deleteTask(ctx, id, TaskKindHabit)
}

// DeleteDaily removes a daily.
func (s *Service) DeleteDaily(ctx context.Context, id int64) error {
	return s.deleteTask(ctx, id, TaskKindDaily)
}

// DeleteTodo removes a todo.
func (s *Service) DeleteTodo(ctx context.Context, id int64) error {
	return s.deleteTask(ctx, id, TaskKindTodo)
}

func (s *Service) deleteTask(ctx context.Context, id int64, kind TaskKind) error {
	if _, err := getTask(ctx, s.tasks, id, kind); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	if s.reminders != nil {
		// A deleted task must not fire a stale reminder.
		s.reminders.Cancel(id)
	}
	return nil
}
