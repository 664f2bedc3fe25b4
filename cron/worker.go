package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"unicare/config"
	"unicare/models"
	"unicare/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// TaskQueueRedisOpt returns the Redis connection used by both the asynq
// client and the worker.
func TaskQueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// InitTaskWorker runs the async worker in background. It handles appointment
// reminders and campaign fan-outs.
func InitTaskWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		TaskQueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeAppointmentReminder, handleReminderTask(notifSvc))
	mux.HandleFunc(notification.TypeCampaignFanOut, handleCampaignTask(notifSvc))

	go monitorRedisConnection()

	go func() {
		log.Println("[TaskWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.DeliverReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder for appointment %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}

func handleCampaignTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.CampaignPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[CampaignHandler] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.FanOutCampaign(ctx, p.CampaignID); err != nil {
			log.Printf("[CampaignHandler] fan-out failed for campaign %s: %v", p.CampaignID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TaskWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
