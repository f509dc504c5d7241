package cartstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/config"
)

// FromConfig builds the cart store selected by CART_STORE. The server and
// the operational CLI tools share this so they always hit the same backend.
func FromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (CartStore, error) {
	switch cfg.CartStore {
	case "redis":
		return NewRedisStore(ctx, cfg.Redis.Addr, logger)
	case "postgres":
		db, err := NewConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db, logger), nil
	case "memory", "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cart store backend %q", cfg.CartStore)
	}
}
