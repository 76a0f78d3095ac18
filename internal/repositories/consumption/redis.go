package consumption

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
	consumptionKeyPrefix = "consumption:"
	uniqueKeyPrefix      = "consumption:uniq:"
	sessionIndexPrefix   = "consumptions:session:"
)

var (
	// ErrConsumptionNotFound is returned when a consumption is not found
	ErrConsumptionNotFound = errors.New("consumption not found")

	// ErrAlreadyConsumed is returned when a consumption already exists
	// for the (student, session) pair
	ErrAlreadyConsumed = errors.New("consumption already registered for student in session")
)

// Config holds configuration for the Redis consumption repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed consumption repository
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

// uniqueKey builds the uniqueness-guard key for a (session, student) pair
func uniqueKey(sessionID, studentID string) string {
	return fmt.Sprintf("%s%s:%s", uniqueKeyPrefix, sessionID, studentID)
}

// CreateConsumption persists a consumption to Redis. The uniqueness
// guard is a SET NX on the (session, student) key: whichever of two
// racing callers loses the SET NX observes ErrAlreadyConsumed instead
// of writing a duplicate row.
func (r *redisRepository) CreateConsumption(ctx context.Context, input *CreateConsumptionInput) error {
	if input == nil || input.Consumption == nil {
		return errors.New("input and consumption cannot be nil")
	}

	c := input.Consumption
	if c.ID == "" || c.SessionID == "" || c.StudentID == "" {
		return errors.New("consumption ID, session ID and student ID cannot be empty")
	}

	set, err := r.client.SetNX(ctx, uniqueKey(c.SessionID, c.StudentID), c.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim consumption slot: %w", err)
	}
	if !set {
		return ErrAlreadyConsumed
	}

	consumptionJSON, err := json.Marshal(c)
	if err != nil {
		// Free the slot so the caller can retry
		r.client.Del(ctx, uniqueKey(c.SessionID, c.StudentID))
		return fmt.Errorf("failed to marshal consumption: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, consumptionKeyPrefix+c.ID, consumptionJSON, 0)
	pipe.ZAdd(ctx, sessionIndexPrefix+c.SessionID, redis.Z{
		Score:  float64(c.CreatedAt.UnixNano()),
		Member: c.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		r.client.Del(ctx, uniqueKey(c.SessionID, c.StudentID))
		return fmt.Errorf("failed to save consumption: %w", err)
	}

	return nil
}

// GetConsumption retrieves a consumption by ID from Redis
func (r *redisRepository) GetConsumption(ctx context.Context, input *GetConsumptionInput) (*models.Consumption, error) {
	if input == nil || input.ConsumptionID == "" {
		return nil, errors.New("input and consumption ID cannot be empty")
	}

	consumptionJSON, err := r.client.Get(ctx, consumptionKeyPrefix+input.ConsumptionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConsumptionNotFound
		}
		return nil, fmt.Errorf("failed to get consumption: %w", err)
	}

	var c models.Consumption
	if err := json.Unmarshal([]byte(consumptionJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal consumption: %w", err)
	}

	return &c, nil
}

// GetSessionConsumption retrieves the consumption for a student within a
// session via the uniqueness key
func (r *redisRepository) GetSessionConsumption(ctx context.Context, input *GetSessionConsumptionInput) (*models.Consumption, error) {
	if input == nil || input.SessionID == "" || input.StudentID == "" {
		return nil, errors.New("input, session ID and student ID cannot be empty")
	}

	consumptionID, err := r.client.Get(ctx, uniqueKey(input.SessionID, input.StudentID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrConsumptionNotFound
		}
		return nil, fmt.Errorf("failed to get consumption slot: %w", err)
	}

	return r.GetConsumption(ctx, &GetConsumptionInput{
		ConsumptionID: consumptionID,
	})
}

// DeleteConsumption removes a consumption from Redis, including its
// uniqueness slot and session index entry
func (r *redisRepository) DeleteConsumption(ctx context.Context, input *DeleteConsumptionInput) error {
	if input == nil || input.ConsumptionID == "" {
		return errors.New("input and consumption ID cannot be empty")
	}

	c, err := r.GetConsumption(ctx, &GetConsumptionInput{
		ConsumptionID: input.ConsumptionID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, consumptionKeyPrefix+c.ID)
	pipe.Del(ctx, uniqueKey(c.SessionID, c.StudentID))
	pipe.ZRem(ctx, sessionIndexPrefix+c.SessionID, c.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete consumption: %w", err)
	}

	return nil
}

// ListConsumptionsBySession retrieves all consumptions for a session in
// registration order
func (r *redisRepository) ListConsumptionsBySession(ctx context.Context, input *ListConsumptionsBySessionInput) (*ListConsumptionsBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	consumptionIDs, err := r.client.ZRange(ctx, sessionIndexPrefix+input.SessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get consumption IDs: %w", err)
	}

	consumptions := make([]*models.Consumption, 0, len(consumptionIDs))
	for _, consumptionID := range consumptionIDs {
		c, err := r.GetConsumption(ctx, &GetConsumptionInput{ConsumptionID: consumptionID})
		if err != nil {
			if errors.Is(err, ErrConsumptionNotFound) {
				continue
			}
			return nil, err
		}
		consumptions = append(consumptions, c)
	}

	return &ListConsumptionsBySessionOutput{
		Consumptions: consumptions,
	}, nil
}
