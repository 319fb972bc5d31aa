package cron

import (
	"context"
	"log"
	"time"

	"github.com/chrisdemonxxx/godrive/services/booking"
	"github.com/chrisdemonxxx/godrive/services/payout"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/hibiken/asynq"
)

// InitQueueWorker runs the async worker in background. It handles the
// delayed booking-expiry tasks and payout processing tasks.
func InitQueueWorker(bookingSvc *booking.DefaultBookingService, payoutSvc *payout.DefaultPayoutService) {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeBookingExpire, func(ctx context.Context, task *asynq.Task) error {
		return bookingSvc.HandleExpireTask(task.Payload())
	})
	mux.HandleFunc(payout.TypePayoutProcess, func(ctx context.Context, task *asynq.Task) error {
		return payoutSvc.HandleProcessTask(task.Payload())
	})

	// Start async worker with retry logic
	go func() {
		log.Println("[QueueWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[QueueWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[QueueWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}
