package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-scheduler/internal/ports/storage"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultTTL       = 12 * time.Hour
	defaultKeyPrefix = "petcare:session:"
)

var (
	ErrSessionRequired = errors.New("session id required")
)

// KV guarda cada sesión como un hash de Redis. El TTL se renueva en cada
// escritura: una sesión inactiva expira sola, como una pestaña cerrada.
type KV struct {
	client *goredis.Client
	ttl    time.Duration
	prefix string
}

type Options struct {
	TTL    time.Duration
	Prefix string
}

func NewKV(client *goredis.Client, opts Options) *KV {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	prefix := strings.TrimSpace(opts.Prefix)
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &KV{client: client, ttl: ttl, prefix: prefix}
}

var _ storage.KV = (*KV)(nil)

func (s *KV) sessionKey(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrSessionRequired
	}
	return s.prefix + sessionID, nil
}

func (s *KV) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	hk, err := s.sessionKey(sessionID)
	if err != nil {
		return "", false, err
	}

	v, err := s.client.HGet(ctx, hk, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis hget: %w", err)
	}
	return v, true, nil
}

func (s *KV) Set(ctx context.Context, sessionID, key, value string) error {
	hk, err := s.sessionKey(sessionID)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, hk, key, value)
	pipe.Expire(ctx, hk, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}

func (s *KV) Remove(ctx context.Context, sessionID, key string) error {
	hk, err := s.sessionKey(sessionID)
	if err != nil {
		return err
	}
	if err := s.client.HDel(ctx, hk, key).Err(); err != nil {
		return fmt.Errorf("redis hdel: %w", err)
	}
	return nil
}

func (s *KV) Clear(ctx context.Context, sessionID string) error {
	hk, err := s.sessionKey(sessionID)
	if err != nil {
		return err
	}
	if err := s.client.Del(ctx, hk).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Open crea el cliente y verifica conexión con un ping corto.
func Open(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
