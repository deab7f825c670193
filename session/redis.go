package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"regenmed/models"

	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
)

const sessionKeyPrefix = "session:"

// SessionTTL matches the cookie's 30-day sliding window.
const SessionTTL = 30 * 24 * time.Hour

// RedisStore keeps sessions as JSON blobs with a TTL, for deployments where
// the relay runs more than one replica.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and fails if the server is unreachable.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (sessions): %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) SetTokens(ctx context.Context, id string, tokens *oauth2.Token) error {
	sess := models.Session{ID: id, Tokens: tokens}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	// SET replaces the whole value, so concurrent grants never interleave.
	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) HasTokens(ctx context.Context, id string) (bool, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return sess.Authenticated(), nil
}
