package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notequiz/internal/cache"
	"notequiz/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisSessionRepository implements domain.SessionRepository on Redis so a
// live quiz session survives process restarts and can be shared between
// instances. Sessions are stored as JSON under a per-owner key with a TTL;
// Save replaces the value wholesale, matching the single-slot contract.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new instance of RedisSessionRepository.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func (r *RedisSessionRepository) key(ownerID string) string {
	return cache.GenerateCacheKey("session", "quiz", ownerID)
}

// Get returns the owner's live session, or (nil, nil) when none exists.
func (r *RedisSessionRepository) Get(ctx context.Context, ownerID string) (*domain.QuizSession, error) {
	data, err := r.client.Get(ctx, r.key(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session for owner %s: %w", ownerID, err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session for owner %s: %w", ownerID, err)
	}
	return &session, nil
}

// Save stores the session for the owner, replacing any previous one.
func (r *RedisSessionRepository) Save(ctx context.Context, ownerID string, session *domain.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session for owner %s: %w", ownerID, err)
	}
	if err := r.client.Set(ctx, r.key(ownerID), string(data), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session for owner %s: %w", ownerID, err)
	}
	return nil
}

// Clear removes the owner's session. Clearing an absent owner is a no-op.
func (r *RedisSessionRepository) Clear(ctx context.Context, ownerID string) error {
	return r.client.Del(ctx, r.key(ownerID)).Err()
}
