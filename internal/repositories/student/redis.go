package student

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
	studentKeyPrefix = "student:"
	prontKeyPrefix   = "student:pront:"
	groupKeyPrefix   = "students:group:"
	allStudentsKey   = "students"
)

// ErrStudentNotFound is returned when a student is not found
var ErrStudentNotFound = errors.New("student not found")

// Config holds configuration for the Redis student repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed student repository
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

// UpsertStudent creates or updates a student keyed by registration number
func (r *redisRepository) UpsertStudent(ctx context.Context, input *UpsertStudentInput) (*UpsertStudentOutput, error) {
	if input == nil || input.Pront == "" {
		return nil, errors.New("input and pront cannot be empty")
	}

	now := time.Now()

	existing, err := r.GetStudentByPront(ctx, &GetStudentByProntInput{
		Pront: input.Pront,
	})
	if err != nil && !errors.Is(err, ErrStudentNotFound) {
		return nil, err
	}

	created := existing == nil

	var stu *models.Student
	var oldGroup string
	if created {
		stu = &models.Student{
			ID:        uuid.New().String(),
			Pront:     input.Pront,
			Name:      input.Name,
			Group:     input.Group,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		oldGroup = existing.Group
		stu = existing
		stu.Name = input.Name
		stu.Group = input.Group
		stu.Active = true
		stu.UpdatedAt = now
	}

	studentJSON, err := json.Marshal(stu)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal student: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, studentKeyPrefix+stu.ID, studentJSON, 0)
	pipe.Set(ctx, prontKeyPrefix+stu.Pront, stu.ID, 0)
	pipe.SAdd(ctx, allStudentsKey, stu.ID)
	pipe.SAdd(ctx, groupKeyPrefix+stu.Group, stu.ID)

	// A re-import may move a student to another group
	if oldGroup != "" && oldGroup != stu.Group {
		pipe.SRem(ctx, groupKeyPrefix+oldGroup, stu.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save student: %w", err)
	}

	return &UpsertStudentOutput{
		Student: stu,
		Created: created,
	}, nil
}

// GetStudent retrieves a student by ID from Redis
func (r *redisRepository) GetStudent(ctx context.Context, input *GetStudentInput) (*models.Student, error) {
	if input == nil || input.StudentID == "" {
		return nil, errors.New("input and student ID cannot be empty")
	}

	studentJSON, err := r.client.Get(ctx, studentKeyPrefix+input.StudentID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	var stu models.Student
	if err := json.Unmarshal([]byte(studentJSON), &stu); err != nil {
		return nil, fmt.Errorf("failed to unmarshal student: %w", err)
	}

	return &stu, nil
}

// GetStudentByPront retrieves a student by registration number
func (r *redisRepository) GetStudentByPront(ctx context.Context, input *GetStudentByProntInput) (*models.Student, error) {
	if input == nil || input.Pront == "" {
		return nil, errors.New("input and pront cannot be empty")
	}

	studentID, err := r.client.Get(ctx, prontKeyPrefix+input.Pront).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student ID for pront: %w", err)
	}

	return r.GetStudent(ctx, &GetStudentInput{
		StudentID: studentID,
	})
}

// ListStudents retrieves all students from Redis
func (r *redisRepository) ListStudents(ctx context.Context, input *ListStudentsInput) (*ListStudentsOutput, error) {
	studentIDs, err := r.client.SMembers(ctx, allStudentsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get student IDs: %w", err)
	}

	students, err := r.getStudents(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	return &ListStudentsOutput{
		Students: students,
	}, nil
}

// ListStudentsByGroups retrieves all students in any of the given groups
func (r *redisRepository) ListStudentsByGroups(ctx context.Context, input *ListStudentsByGroupsInput) (*ListStudentsByGroupsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Groups) == 0 {
		return &ListStudentsByGroupsOutput{
			Students: []*models.Student{},
		}, nil
	}

	groupKeys := make([]string, 0, len(input.Groups))
	for _, group := range input.Groups {
		groupKeys = append(groupKeys, groupKeyPrefix+group)
	}

	studentIDs, err := r.client.SUnion(ctx, groupKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get student IDs for groups: %w", err)
	}

	students, err := r.getStudents(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	return &ListStudentsByGroupsOutput{
		Students: students,
	}, nil
}

// getStudents fetches a batch of students by ID using a pipeline
func (r *redisRepository) getStudents(ctx context.Context, studentIDs []string) ([]*models.Student, error) {
	if len(studentIDs) == 0 {
		return []*models.Student{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(studentIDs))

	for _, studentID := range studentIDs {
		commands[studentID] = pipe.Get(ctx, studentKeyPrefix+studentID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}

	students := make([]*models.Student, 0, len(studentIDs))
	for studentID, cmd := range commands {
		studentJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Student was removed between getting the IDs and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get student %s: %w", studentID, err)
		}

		var stu models.Student
		if err := json.Unmarshal([]byte(studentJSON), &stu); err != nil {
			return nil, fmt.Errorf("failed to unmarshal student %s: %w", studentID, err)
		}

		students = append(students, &stu)
	}

	return students, nil
}
