package flash

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/member-roster/internal/platform/config"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Open returns the FlashStore selected by cfg.Backend. The redis backend is
// pinged before it is returned; the caller should Close the client it holds
// through the returned close func. For the cookie backend close is a no-op,
// and an empty cfg.Secret signs cookies with a key generated per process.
func Open(ctx context.Context, cfg config.FlashConfig) (ports.FlashStore, func() error, error) {
	switch cfg.Backend {
	case config.FlashBackendCookie:
		store, err := NewCookieStore(cfg.CookieName, []byte(cfg.Secret), cfg.TTL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil
	case config.FlashBackendRedis:
		client := NewRedisClient(cfg.Redis)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedisStore(client, cfg.SessionCookieName, cfg.TTL), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported flash backend %q", cfg.Backend)
	}
}
