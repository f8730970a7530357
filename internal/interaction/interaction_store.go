package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"
)

// Store keeps pending sessions until they are taken or expire.
// Get, Take and Delete report ErrSessionExpired for unknown or expired ids.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// Take returns the session and removes it in one step, so a session
	// can be submitted at most once.
	Take(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

func ttlOf(s *Session) time.Duration {
	return time.Until(s.ExpiresAt)
}

// --- In-memory store ---

// MemoryStore keeps sessions in a TTL cache; expired entries are evicted in the background.
type MemoryStore struct {
	cache *ttlcache.Cache[string, Session]
}

// NewMemoryStore creates the store and starts its eviction loop. Call Close to stop it.
func NewMemoryStore() *MemoryStore {
	cache := ttlcache.New[string, Session](
		ttlcache.WithDisableTouchOnHit[string, Session](),
	)
	go cache.Start()
	return &MemoryStore{cache: cache}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	ttl := ttlOf(s)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	m.cache.Set(s.ID, *s, ttl)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	item := m.cache.Get(id)
	if item == nil {
		return nil, ErrSessionExpired
	}
	s := item.Value()
	return &s, nil
}

func (m *MemoryStore) Take(_ context.Context, id string) (*Session, error) {
	item, ok := m.cache.GetAndDelete(id)
	if !ok || item == nil {
		return nil, ErrSessionExpired
	}
	s := item.Value()
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	if _, ok := m.cache.GetAndDelete(id); !ok {
		return ErrSessionExpired
	}
	return nil
}

// Len reports the number of live sessions.
func (m *MemoryStore) Len() int { return m.cache.Len() }

// Close stops the eviction loop.
func (m *MemoryStore) Close() { m.cache.Stop() }

// --- Redis store ---

// RedisStore keeps sessions as JSON values with a Redis TTL, so pending
// prompts survive a restart and are shared between replicas.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces session keys; an empty prefix keeps the default.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if p := strings.Trim(prefix, ":"); p != "" {
			s.prefix = p
		}
	}
}

func NewRedisStore(rdb *redis.Client, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{rdb: rdb, prefix: "scrim:interaction"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (r *RedisStore) key(id string) string { return r.prefix + ":" + id }

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := ttlOf(s)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.rdb.Set(ctx, r.key(s.ID), raw, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	return decode(r.rdb.Get(ctx, r.key(id)).Bytes())
}

func (r *RedisStore) Take(ctx context.Context, id string) (*Session, error) {
	return decode(r.rdb.GetDel(ctx, r.key(id)).Bytes())
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := r.rdb.Del(ctx, r.key(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionExpired
	}
	return nil
}

func decode(raw []byte, err error) (*Session, error) {
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}
