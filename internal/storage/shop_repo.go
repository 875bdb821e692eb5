package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ShopRepo struct {
	q Querier
}

func NewShopRepo(db *sql.DB) *ShopRepo {
	return &ShopRepo{q: db}
}

// InTx returns a copy of the repo bound to the given transaction.
func (r *ShopRepo) InTx(tx *sql.Tx) *ShopRepo {
	return &ShopRepo{q: tx}
}

func (r *ShopRepo) IsOwned(ctx context.Context, itemID string) (bool, error) {
	row := r.q.QueryRowContext(ctx, `SELECT 1 FROM owned_items WHERE item_id = ?`, itemID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("owned item get: %w", err)
	}
	return true, nil
}

// Owned returns the full ownership set keyed by item id.
func (r *ShopRepo) Owned(ctx context.Context) (map[string]OwnedItem, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT item_id, owned_at FROM owned_items`)
	if err != nil {
		return nil, fmt.Errorf("owned items list: %w", err)
	}
	defer rows.Close()

	out := map[string]OwnedItem{}
	for rows.Next() {
		var it OwnedItem
		if err := rows.Scan(&it.ItemID, &it.OwnedAt); err != nil {
			return nil, fmt.Errorf("owned item scan: %w", err)
		}
		out[it.ItemID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("owned items rows: %w", err)
	}
	return out, nil
}

// MarkOwned records ownership; ownership never reverts, so conflicts are
// ignored.
func (r *ShopRepo) MarkOwned(ctx context.Context, itemID string, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO owned_items (item_id, owned_at) VALUES (?, ?)
		ON CONFLICT(item_id) DO NOTHING
	`, itemID, at)
	if err != nil {
		return fmt.Errorf("owned item insert: %w", err)
	}
	return nil
}
