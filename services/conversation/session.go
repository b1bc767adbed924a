package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"citabot/models"
)

const sessionKeyPrefix = "conv:"

// redisSessionStore keeps conversation state as a JSON blob with a TTL.
// A requester going silent simply lets the entry expire; no cleanup pass
// is needed.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore constructs a Redis-backed SessionStore.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (r *redisSessionStore) Get(ctx context.Context, requesterID string) (*models.ConversationState, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+requesterID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var state models.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &state, nil
}

func (r *redisSessionStore) Put(ctx context.Context, state *models.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+state.RequesterID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *redisSessionStore) Delete(ctx context.Context, requesterID string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+requesterID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
