package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mgpereira/registro/internal/common/clock"
	"github.com/mgpereira/registro/internal/common/uuid"
	"github.com/mgpereira/registro/internal/handlers/cli"
	"github.com/mgpereira/registro/internal/repositories/consumption"
	"github.com/mgpereira/registro/internal/repositories/reserve"
	"github.com/mgpereira/registro/internal/repositories/session"
	"github.com/mgpereira/registro/internal/repositories/sheet"
	"github.com/mgpereira/registro/internal/repositories/student"
	exportService "github.com/mgpereira/registro/internal/services/export"
	registrationService "github.com/mgpereira/registro/internal/services/registration"
	sessionService "github.com/mgpereira/registro/internal/services/session"
	syncService "github.com/mgpereira/registro/internal/services/sync"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	studentRepo, err := student.NewRedis(&student.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create student repository: %v", err)
	}

	reserveRepo, err := reserve.NewRedis(&reserve.Config{
		RedisClient:        redisClient,
		SeparateSnackSlots: getEnv("SEPARATE_SNACK_SLOTS", "") != "",
	})
	if err != nil {
		log.Fatalf("Failed to create reserve repository: %v", err)
	}

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	consumptionRepo, err := consumption.NewRedis(&consumption.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create consumption repository: %v", err)
	}

	// Shared clock and id generator
	clk := &clock.DefaultClock{}
	uuider := uuid.New()

	// Spreadsheet adapters
	source := sheet.NewCSVSource(
		getEnv("ROSTER_CSV", "roster.csv"),
		getEnv("RESERVES_CSV", "reserves.csv"),
	)
	servedSheet := sheet.NewCSVServedSheet(getEnv("SERVED_CSV", "served.csv"))

	syncTimeout, err := time.ParseDuration(getEnv("SYNC_TIMEOUT", "30s"))
	if err != nil {
		log.Fatalf("Invalid SYNC_TIMEOUT: %v", err)
	}

	// Initialize services
	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:   sessionRepo,
		Clock:         clk,
		UUIDGenerator: uuider,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	registrationSvc, err := registrationService.New(&registrationService.Config{
		SessionRepo:     sessionRepo,
		StudentRepo:     studentRepo,
		ReserveRepo:     reserveRepo,
		ConsumptionRepo: consumptionRepo,
		Clock:           clk,
		UUIDGenerator:   uuider,
	})
	if err != nil {
		log.Fatalf("Failed to create registration service: %v", err)
	}

	syncSvc, err := syncService.New(&syncService.Config{
		SessionRepo:     sessionRepo,
		StudentRepo:     studentRepo,
		ReserveRepo:     reserveRepo,
		ConsumptionRepo: consumptionRepo,
		Source:          source,
		ServedSheet:     servedSheet,
		Timeout:         syncTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create sync service: %v", err)
	}

	exportSvc, err := exportService.New(&exportService.Config{
		SessionRepo:     sessionRepo,
		StudentRepo:     studentRepo,
		ConsumptionRepo: consumptionRepo,
		Sink:            sheet.NewCSVSink(),
		Dir:             getEnv("EXPORT_DIR", "."),
	})
	if err != nil {
		log.Fatalf("Failed to create export service: %v", err)
	}

	handler, err := cli.New(&cli.Config{
		SessionService:      sessionSvc,
		RegistrationService: registrationSvc,
		SyncService:         syncSvc,
		ExportService:       exportSvc,
		SnapshotPath:        getEnv("SNAPSHOT_PATH", "session.json"),
	})
	if err != nil {
		log.Fatalf("Failed to create CLI handler: %v", err)
	}

	if err := handler.RootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
