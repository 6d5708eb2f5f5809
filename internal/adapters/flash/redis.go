package flash

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/member-roster/internal/platform/config"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.FlashStore    = (*RedisStore)(nil)
	_ ports.HealthChecker = (*RedisStore)(nil)
)

const keyPrefix = "roster:flash:"

// RedisClient is the subset of *redis.Client used by RedisStore.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisStore keeps pending notices in Redis under a per-client session id.
// The session id lives in a cookie issued on the first Set; notices expire
// after ttl if never shown.
type RedisStore struct {
	client        RedisClient
	sessionCookie string
	ttl           time.Duration
}

// NewRedisClient builds a go-redis client from cfg.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// NewRedisStore returns a RedisStore that identifies clients by the cookie
// named sessionCookie.
func NewRedisStore(client RedisClient, sessionCookie string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, sessionCookie: sessionCookie, ttl: ttl}
}

// Set implements ports.FlashStore.
func (s *RedisStore) Set(w http.ResponseWriter, r *http.Request, msg string) error {
	sid := s.sessionID(r)
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     s.sessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	if err := s.client.Set(r.Context(), keyPrefix+sid, msg, s.ttl).Err(); err != nil {
		return fmt.Errorf("storing flash for session: %w", err)
	}
	return nil
}

// Pop implements ports.FlashStore. GETDEL makes the read and the removal a
// single step, so concurrent requests cannot both show the notice.
func (s *RedisStore) Pop(_ http.ResponseWriter, r *http.Request) (string, error) {
	sid := s.sessionID(r)
	if sid == "" {
		return "", nil
	}

	msg, err := s.client.GetDel(r.Context(), keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("popping flash for session: %w", err)
	}
	return msg, nil
}

// Name implements ports.HealthChecker.
func (s *RedisStore) Name() string {
	return "flash-redis"
}

// HealthCheck pings Redis.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) sessionID(r *http.Request) string {
	c, err := r.Cookie(s.sessionCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
