package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type AchievementRepo struct {
	q Querier
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{q: db}
}

// InTx returns a copy of the repo bound to the given transaction.
func (r *AchievementRepo) InTx(tx *sql.Tx) *AchievementRepo {
	return &AchievementRepo{q: tx}
}

// All returns the unlock state for every achievement that has any,
// keyed by achievement id. Achievements without a row are still locked
// with zero progress.
func (r *AchievementRepo) All(ctx context.Context) (map[string]AchievementState, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT achievement_id, unlocked, unlocked_at, progress FROM achievement_state
	`)
	if err != nil {
		return nil, fmt.Errorf("achievement state list: %w", err)
	}
	defer rows.Close()

	out := map[string]AchievementState{}
	for rows.Next() {
		var st AchievementState
		var unlocked int
		if err := rows.Scan(&st.AchievementID, &unlocked, &st.UnlockedAt, &st.Progress); err != nil {
			return nil, fmt.Errorf("achievement state scan: %w", err)
		}
		st.Unlocked = unlocked != 0
		out[st.AchievementID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement state rows: %w", err)
	}
	return out, nil
}

func (r *AchievementRepo) Upsert(ctx context.Context, st AchievementState) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO achievement_state (achievement_id, unlocked, unlocked_at, progress)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(achievement_id) DO UPDATE SET
			unlocked = excluded.unlocked,
			unlocked_at = excluded.unlocked_at,
			progress = excluded.progress
	`, st.AchievementID, boolToInt(st.Unlocked), st.UnlockedAt, st.Progress)
	if err != nil {
		return fmt.Errorf("achievement state upsert: %w", err)
	}
	return nil
}
