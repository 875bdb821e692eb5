package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProfileRepo struct {
	q Querier
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{q: db}
}

func (r *ProfileRepo) Get(ctx context.Context, userKey string) (*Profile, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT user_key, display_name, avatar, frame, name_color, background
		FROM profile WHERE user_key = ?
	`, userKey)

	var p Profile
	err := row.Scan(&p.UserKey, &p.DisplayName, &p.Avatar, &p.Frame, &p.NameColor, &p.Background)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) GetOrCreate(ctx context.Context, userKey string) (*Profile, error) {
	p, err := r.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.q.ExecContext(ctx, `INSERT INTO profile (user_key) VALUES (?)`, userKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, userKey)
}

// Replace overwrites the whole profile row.
func (r *ProfileRepo) Replace(ctx context.Context, p *Profile) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE profile
		SET display_name = ?, avatar = ?, frame = ?, name_color = ?, background = ?
		WHERE user_key = ?
	`, p.DisplayName, p.Avatar, p.Frame, p.NameColor, p.Background, p.UserKey)
	if err != nil {
		return fmt.Errorf("profile replace: %w", err)
	}
	return nil
}
