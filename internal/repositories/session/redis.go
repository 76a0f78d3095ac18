package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mgpereira/registro/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	allSessionsKey   = "sessions"

	// The single active-session pointer, a well-known key rather than a
	// process global
	activeSessionKey = "session:active"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoActiveSession is returned when the active-session slot is empty
	ErrNoActiveSession = errors.New("no active session")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+input.Session.ID, sessionJSON, 0)
	pipe.ZAdd(ctx, allSessionsKey, redis.Z{
		Score:  float64(input.Session.CreatedAt.UnixNano()),
		Member: input.Session.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListSessions retrieves all sessions from Redis in creation order
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessionIDs, err := r.client.ZRange(ctx, allSessionsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		sess, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// SetActiveSession points the active-session slot at the given session
func (r *redisRepository) SetActiveSession(ctx context.Context, input *SetActiveSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	// The pointer must never reference a session that does not exist
	if _, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID}); err != nil {
		return err
	}

	if err := r.client.Set(ctx, activeSessionKey, input.SessionID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set active session: %w", err)
	}

	return nil
}

// GetActiveSession retrieves the currently active session
func (r *redisRepository) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*models.Session, error) {
	sessionID, err := r.client.Get(ctx, activeSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to get active session ID: %w", err)
	}

	sess, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	return sess, nil
}

// ClearActiveSession empties the active-session slot
func (r *redisRepository) ClearActiveSession(ctx context.Context, input *ClearActiveSessionInput) error {
	if err := r.client.Del(ctx, activeSessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear active session: %w", err)
	}

	return nil
}
