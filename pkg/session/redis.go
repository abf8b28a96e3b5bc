package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON under "{prefix}:{token}" with a TTL
// matching the session expiry.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "session"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if s.IsExpired() {
		return nil, ErrExpired
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	if s.IsExpired() {
		return ErrExpired
	}
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	if err := r.client.Set(ctx, r.key(s.Token), data, ttl(s)).Err(); err != nil {
		return err
	}
	s.ClearDirty()
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

func (r *RedisStore) key(token string) string {
	return r.prefix + ":" + token
}
