package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"legalaid/config"
	"legalaid/models"
	"legalaid/services/admin"
	"legalaid/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// queueRedisOpt returns the asynq Redis connection for the import queue.
func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewTaskClient creates the asynq client used to enqueue import tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpt())
}

// InitImportWorker runs the async import worker in background.
func InitImportWorker(adminSvc admin.AdminService) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(admin.TaskTypeDirectoryImport, handleImportTask(adminSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ImportWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ImportWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ImportWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// InitImportScheduler registers the recurring registry imports using the
// configured cron spec (IMPORT_SCHEDULE) and starts the scheduler.
func InitImportScheduler() {
	scheduler := asynq.NewScheduler(queueRedisOpt(), nil)

	for _, source := range models.AuthoritativeSources {
		payload, err := json.Marshal(admin.ImportTaskPayload{Source: source})
		if err != nil {
			log.Printf("[ImportScheduler] Failed to marshal payload for %s: %v", source, err)
			continue
		}
		task := asynq.NewTask(admin.TaskTypeDirectoryImport, payload)
		if _, err := scheduler.Register(config.AppConfig.ImportSchedule, task); err != nil {
			log.Printf("[ImportScheduler] Failed to register schedule for %s: %v", source, err)
		}
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ImportScheduler] Scheduler stopped: %v", err)
		}
	}()
}

func handleImportTask(adminSvc admin.AdminService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p admin.ImportTaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid import task payload", zap.Error(err))
			return err
		}

		summary, err := adminSvc.ImportSource(ctx, p.Source)
		if err != nil {
			logger.Error("Scheduled import failed", zap.String("source", p.Source), zap.Error(err))
			return err
		}

		logger.Info("Scheduled import completed",
			zap.String("source", summary.Source),
			zap.Int("imported", summary.Imported),
			zap.Int("skipped", summary.Skipped))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ImportWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
