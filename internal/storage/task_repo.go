package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	q Querier
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{q: db}
}

// InTx returns a copy of the repo bound to the given transaction.
func (r *TaskRepo) InTx(tx *sql.Tx) *TaskRepo {
	return &TaskRepo{q: tx}
}

type TaskInsert struct {
	Kind       string
	Title      string
	Notes      *string
	Difficulty string
	Priority   *string
	XPReward   int
	CoinReward int
	Positive   bool
	DueAt      *time.Time
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO tasks (kind, title, notes, difficulty, priority, xp_reward, coin_reward, positive, due_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Kind, in.Title, in.Notes, in.Difficulty, in.Priority, in.XPReward, in.CoinReward, boolToInt(in.Positive), in.DueAt)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

const taskColumns = `id, kind, title, notes, difficulty, priority, xp_reward, coin_reward, positive, streak, completed, due_at, created_at, completed_at`

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task get: %w", err)
	}
	return t, nil
}

// ListByKind returns tasks of one kind in insertion order. When activeOnly
// is set, completed todos are excluded; completed dailies stay visible (the
// flag is part of the daily view until the external cadence reset).
func (r *TaskRepo) ListByKind(ctx context.Context, kind string, activeOnly bool) ([]Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE kind = ?`
	if activeOnly && kind == "todo" {
		query += ` AND completed = 0`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.q.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("task scan: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// TaskUpdate is a partial merge; nil fields keep their stored value.
type TaskUpdate struct {
	Title      *string
	Notes      *string
	Difficulty *string
	Priority   *string
	XPReward   *int
	CoinReward *int
	Positive   *bool
	DueAt      *time.Time
}

func (r *TaskRepo) Update(ctx context.Context, id int64, up TaskUpdate) error {
	set := ""
	var args []any
	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}

	if up.Title != nil {
		add("title", *up.Title)
	}
	if up.Notes != nil {
		add("notes", *up.Notes)
	}
	if up.Difficulty != nil {
		add("difficulty", *up.Difficulty)
	}
	if up.Priority != nil {
		add("priority", *up.Priority)
	}
	if up.XPReward != nil {
		add("xp_reward", *up.XPReward)
	}
	if up.CoinReward != nil {
		add("coin_reward", *up.CoinReward)
	}
	if up.Positive != nil {
		add("positive", boolToInt(*up.Positive))
	}
	if up.DueAt != nil {
		add("due_at", *up.DueAt)
	}
	if set == "" {
		return nil
	}

	args = append(args, id)
	if _, err := r.q.ExecContext(ctx, `UPDATE tasks SET `+set+` WHERE id = ?`, args...); err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) MarkCompleted(ctx context.Context, id int64, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return fmt.Errorf("task mark completed: %w", err)
	}
	return nil
}

func (r *TaskRepo) SetStreak(ctx context.Context, id int64, streak int) error {
	_, err := r.q.ExecContext(ctx, `UPDATE tasks SET streak = ? WHERE id = ?`, streak, id)
	if err != nil {
		return fmt.Errorf("task set streak: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*Task, error) {
	var t Task
	var positive, completed int
	err := scan(&t.ID, &t.Kind, &t.Title, &t.Notes, &t.Difficulty, &t.Priority,
		&t.XPReward, &t.CoinReward, &positive, &t.Streak, &completed,
		&t.DueAt, &t.CreatedAt, &t.CompletedAt)
	if err != nil {
		return nil, err
	}
	t.Positive = positive != 0
	t.Completed = completed != 0
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
