package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "simulator:session:"

// RedisStore keeps sessions as JSON values expiring after the TTL
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, now: time.Now}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Save writes the session inside a WATCH transaction on its key, so a
// concurrent writer makes it fail with ErrVersionConflict
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	now := r.now()
	next := *s
	next.UpdatedAt = now
	next.ExpiresAt = now.Add(r.ttl)
	next.Version = s.Version + 1

	data, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	k := key(s.ID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := storedVersion(ctx, tx, k)
		exists := err == nil
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err := checkVersion(exists, stored, s.Version); err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, r.ttl)
			return nil
		})
		return err
	}, k)

	switch {
	case err == nil:
	case errors.Is(err, redis.TxFailedErr):
		return ErrVersionConflict
	case errors.Is(err, ErrVersionConflict), errors.Is(err, ErrSessionNotFound):
		return err
	default:
		return fmt.Errorf("save session: %w", err)
	}

	s.UpdatedAt = next.UpdatedAt
	s.ExpiresAt = next.ExpiresAt
	s.Version = next.Version
	return nil
}

func storedVersion(ctx context.Context, tx *redis.Tx, k string) (int64, error) {
	data, err := tx.Get(ctx, k).Bytes()
	if err != nil {
		return 0, err
	}
	var v struct {
		Version int64 `json:"version"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, fmt.Errorf("decode session: %w", err)
	}
	return v.Version, nil
}

func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping reports whether Redis answers
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
