package reserve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mgpereira/registro/internal/models"
)

const (
	// Key prefixes for Redis
	reserveKeyPrefix = "reserve:"
	slotKeyPrefix    = "reserve:slot:"
	dateKeyPrefix    = "reserves:date:"
)

// ErrReserveNotFound is returned when a reserve is not found
var ErrReserveNotFound = errors.New("reserve not found")

// Config holds configuration for the Redis reserve repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// SeparateSnackSlots keys reserves by (student, date, snacks) instead
	// of (student, date), allowing a lunch and a snack reserve to coexist
	// on the same date
	SeparateSnackSlots bool
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client             *redis.Client
	separateSnackSlots bool
}

// NewRedis creates a new Redis-backed reserve repository
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
		client:             cfg.RedisClient,
		separateSnackSlots: cfg.SeparateSnackSlots,
	}, nil
}

// slotKey builds the upsert key for a student/date pair
func (r *redisRepository) slotKey(studentID, date string, snacks bool) string {
	key := fmt.Sprintf("%s%s:%s", slotKeyPrefix, studentID, date)
	if r.separateSnackSlots && snacks {
		key += ":snack"
	}
	return key
}

// UpsertReserve creates or updates a reserve for its slot
func (r *redisRepository) UpsertReserve(ctx context.Context, input *UpsertReserveInput) (*UpsertReserveOutput, error) {
	if input == nil || input.StudentID == "" || input.Date == "" {
		return nil, errors.New("input, student ID and date cannot be empty")
	}

	now := time.Now()
	slotKey := r.slotKey(input.StudentID, input.Date, input.Snacks)

	existingID, err := r.client.Get(ctx, slotKey).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get reserve slot: %w", err)
	}

	created := err == redis.Nil

	var res *models.Reserve
	if created {
		res = &models.Reserve{
			ID:        uuid.New().String(),
			StudentID: input.StudentID,
			Date:      input.Date,
			Dish:      input.Dish,
			Snacks:    input.Snacks,
			Canceled:  input.Canceled,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		res, err = r.GetReserve(ctx, &GetReserveInput{ReserveID: existingID})
		if err != nil {
			return nil, err
		}
		res.Dish = input.Dish
		res.Snacks = input.Snacks
		res.Canceled = input.Canceled
		res.UpdatedAt = now
	}

	reserveJSON, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reserve: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, reserveKeyPrefix+res.ID, reserveJSON, 0)
	pipe.Set(ctx, slotKey, res.ID, 0)
	pipe.SAdd(ctx, dateKeyPrefix+res.Date, res.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save reserve: %w", err)
	}

	return &UpsertReserveOutput{
		Reserve: res,
		Created: created,
	}, nil
}

// GetReserve retrieves a reserve by ID from Redis
func (r *redisRepository) GetReserve(ctx context.Context, input *GetReserveInput) (*models.Reserve, error) {
	if input == nil || input.ReserveID == "" {
		return nil, errors.New("input and reserve ID cannot be empty")
	}

	reserveJSON, err := r.client.Get(ctx, reserveKeyPrefix+input.ReserveID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrReserveNotFound
		}
		return nil, fmt.Errorf("failed to get reserve: %w", err)
	}

	var res models.Reserve
	if err := json.Unmarshal([]byte(reserveJSON), &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reserve: %w", err)
	}

	return &res, nil
}

// GetActiveReserve retrieves the non-canceled reserve occupying the slot
// for a student/date pair
func (r *redisRepository) GetActiveReserve(ctx context.Context, input *GetActiveReserveInput) (*models.Reserve, error) {
	if input == nil || input.StudentID == "" || input.Date == "" {
		return nil, errors.New("input, student ID and date cannot be empty")
	}

	reserveID, err := r.client.Get(ctx, r.slotKey(input.StudentID, input.Date, input.Snacks)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrReserveNotFound
		}
		return nil, fmt.Errorf("failed to get reserve slot: %w", err)
	}

	res, err := r.GetReserve(ctx, &GetReserveInput{ReserveID: reserveID})
	if err != nil {
		return nil, err
	}

	// Canceled reserves stay on record but no longer count as active
	if res.Canceled {
		return nil, ErrReserveNotFound
	}

	return res, nil
}

// ListReservesByDate retrieves all reserves for a date from Redis
func (r *redisRepository) ListReservesByDate(ctx context.Context, input *ListReservesByDateInput) (*ListReservesByDateOutput, error) {
	if input == nil || input.Date == "" {
		return nil, errors.New("input and date cannot be empty")
	}

	reserveIDs, err := r.client.SMembers(ctx, dateKeyPrefix+input.Date).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get reserve IDs for date: %w", err)
	}

	reserves := make([]*models.Reserve, 0, len(reserveIDs))
	for _, reserveID := range reserveIDs {
		res, err := r.GetReserve(ctx, &GetReserveInput{ReserveID: reserveID})
		if err != nil {
			if errors.Is(err, ErrReserveNotFound) {
				continue
			}
			return nil, err
		}
		reserves = append(reserves, res)
	}

	return &ListReservesByDateOutput{
		Reserves: reserves,
	}, nil
}
