package authentication

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore remembers logged-out token ids until they would have expired.
type TokenStore interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// MemoryTokenStore keeps revoked ids in process memory.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (m *MemoryTokenStore) Revoke(_ context.Context, id string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, exp := range m.revoked {
		if !now.Before(exp) {
			delete(m.revoked, k)
		}
	}
	m.revoked[id] = now.Add(ttl)
	return nil
}

func (m *MemoryTokenStore) IsRevoked(_ context.Context, id string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	exp, ok := m.revoked[id]
	return ok && m.now().Before(exp), nil
}

const revokedKeyPrefix = "revoked:"

// RedisTokenStore shares revocations between instances through Redis keys
// that expire with the token.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (r *RedisTokenStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedKeyPrefix+id, 1, ttl).Err()
}

func (r *RedisTokenStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	err := r.client.Get(ctx, revokedKeyPrefix+id).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
