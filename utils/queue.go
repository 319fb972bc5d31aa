package utils

import (
	"github.com/chrisdemonxxx/godrive/config"

	"github.com/hibiken/asynq"
)

var queueClient *asynq.Client

// QueueRedisOpt returns the Redis connection options for the task queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// GetQueueClient returns the shared asynq client used to enqueue tasks.
func GetQueueClient() *asynq.Client {
	if queueClient == nil {
		queueClient = asynq.NewClient(QueueRedisOpt())
	}
	return queueClient
}
