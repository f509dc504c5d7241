package cartstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

// PostgresStore persists carts in a member_carts table, one JSONB item
// list per member. Schema lives in migrations/001_member_carts.sql.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStore creates a Postgres-backed cart store
func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{
		db:     db,
		logger: logger,
	}
}

func (p *PostgresStore) Load(ctx context.Context, memberID string) ([]domain.LineItem, error) {
	query := `SELECT items FROM member_carts WHERE member_id = $1`

	var raw []byte
	err := p.db.QueryRowContext(ctx, query, memberID).Scan(&raw)
	if err == sql.ErrNoRows {
		return []domain.LineItem{}, nil
	}
	if err != nil {
		p.logger.Error("Failed to load cart", zap.Error(err), zap.String("member_id", memberID))
		return nil, err
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *PostgresStore) Save(ctx context.Context, memberID string, items []domain.LineItem) error {
	query := `
		INSERT INTO member_carts (member_id, items, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (member_id) DO UPDATE SET
			items = EXCLUDED.items,
			updated_at = EXCLUDED.updated_at
	`

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, query, memberID, raw, time.Now())
	if err != nil {
		p.logger.Error("Failed to save cart", zap.Error(err), zap.String("member_id", memberID))
		return err
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, memberID string) error {
	query := `DELETE FROM member_carts WHERE member_id = $1`

	_, err := p.db.ExecContext(ctx, query, memberID)
	if err != nil {
		p.logger.Error("Failed to delete cart", zap.Error(err), zap.String("member_id", memberID))
		return err
	}
	return nil
}
