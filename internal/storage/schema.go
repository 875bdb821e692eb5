package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS game_state (
			user_key TEXT PRIMARY KEY,
			hp INTEGER DEFAULT 100,
			max_hp INTEGER DEFAULT 100,
			total_xp INTEGER DEFAULT 0,
			coins INTEGER DEFAULT 0,
			level INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			habits_done INTEGER DEFAULT 0,
			dailies_done INTEGER DEFAULT 0,
			todos_done INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS profile (
			user_key TEXT PRIMARY KEY,
			display_name TEXT DEFAULT '',
			avatar TEXT DEFAULT '',
			frame TEXT DEFAULT '',
			name_color TEXT DEFAULT '',
			background TEXT DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			notes TEXT,
			difficulty TEXT NOT NULL,
			priority TEXT,
			xp_reward INTEGER NOT NULL,
			coin_reward INTEGER NOT NULL,
			positive INTEGER DEFAULT 1,
			streak INTEGER DEFAULT 0,
			completed INTEGER DEFAULT 0,
			due_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS achievement_state (
			achievement_id TEXT PRIMARY KEY,
			unlocked INTEGER DEFAULT 0,
			unlocked_at DATETIME,
			progress INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS owned_items (
			item_id TEXT PRIMARY KEY,
			owned_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			enabled INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_kind ON tasks(kind);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_kind_completed ON tasks(kind, completed);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
