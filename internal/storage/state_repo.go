package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type StateRepo struct {
	q Querier
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{q: db}
}

// InTx returns a copy of the repo bound to the given transaction.
func (r *StateRepo) InTx(tx *sql.Tx) *StateRepo {
	return &StateRepo{q: tx}
}

const stateColumns = `user_key, hp, max_hp, total_xp, coins, level, streak, habits_done, dailies_done, todos_done`

func (r *StateRepo) Get(ctx context.Context, userKey string) (*GameState, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+stateColumns+` FROM game_state WHERE user_key = ?`, userKey)

	var gs GameState
	err := row.Scan(&gs.UserKey, &gs.HP, &gs.MaxHP, &gs.TotalXP, &gs.Coins, &gs.Level, &gs.Streak,
		&gs.HabitsDone, &gs.DailiesDone, &gs.TodosDone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("game state get: %w", err)
	}
	return &gs, nil
}

func (r *StateRepo) GetOrCreate(ctx context.Context, userKey string) (*GameState, error) {
	gs, err := r.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if gs != nil {
		return gs, nil
	}

	if _, err := r.q.ExecContext(ctx, `INSERT INTO game_state (user_key) VALUES (?)`, userKey); err != nil {
		return nil, fmt.Errorf("game state insert: %w", err)
	}
	return r.Get(ctx, userKey)
}

func (r *StateRepo) Update(ctx context.Context, gs *GameState) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE game_state
		SET hp = ?, max_hp = ?, total_xp = ?, coins = ?, level = ?, streak = ?,
			habits_done = ?, dailies_done = ?, todos_done = ?
		WHERE user_key = ?
	`, gs.HP, gs.MaxHP, gs.TotalXP, gs.Coins, gs.Level, gs.Streak,
		gs.HabitsDone, gs.DailiesDone, gs.TodosDone, gs.UserKey)
	if err != nil {
		return fmt.Errorf("game state update: %w", err)
	}
	return nil
}
