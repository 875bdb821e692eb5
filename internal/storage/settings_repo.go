package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type SettingsRepo struct {
	q Querier
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{q: db}
}

// Get returns the stored value and whether the key has one.
func (r *SettingsRepo) Get(ctx context.Context, key string) (enabled, found bool, err error) {
	row := r.q.QueryRowContext(ctx, `SELECT enabled FROM settings WHERE key = ?`, key)
	var v int
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return false, false, nil
		}
		return false, false, fmt.Errorf("setting get: %w", err)
	}
	return v != 0, true, nil
}

func (r *SettingsRepo) Set(ctx context.Context, key string, enabled bool) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO settings (key, enabled) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET enabled = excluded.enabled
	`, key, boolToInt(enabled))
	if err != nil {
		return fmt.Errorf("setting set: %w", err)
	}
	return nil
}

// All returns every stored setting keyed by key.
func (r *SettingsRepo) All(ctx context.Context) (map[string]bool, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT key, enabled FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("settings list: %w", err)
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var key string
		var v int
		if err := rows.Scan(&key, &v); err != nil {
			return nil, fmt.Errorf("setting scan: %w", err)
		}
		out[key] = v != 0
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("settings rows: %w", err)
	}
	return out, nil
}
