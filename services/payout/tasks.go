package payout

import (
	"encoding/json"
	"fmt"

	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypePayoutProcess is the queue task that settles a payout batch.
const TypePayoutProcess = "payout:process"

// ProcessPayload is the task payload for TypePayoutProcess.
type ProcessPayload struct {
	PayoutID string `json:"payout_id"`
}

// NewProcessTask builds the processing task for a payout batch.
func NewProcessTask(payoutID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ProcessPayload{PayoutID: payoutID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payout payload: %w", err)
	}
	return asynq.NewTask(TypePayoutProcess, payload), nil
}

func (s *DefaultPayoutService) enqueueProcessing(payoutID string) {
	if s.Queue == nil {
		return
	}
	task, err := NewProcessTask(payoutID)
	if err != nil {
		utils.GetLogger().Error("Failed to build payout task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, asynq.MaxRetry(5)); err != nil {
		utils.GetLogger().Error("Failed to enqueue payout processing",
			zap.String("payoutID", payoutID), zap.Error(err))
	}
}

// HandleProcessTask is the asynq handler for TypePayoutProcess.
func (s *DefaultPayoutService) HandleProcessTask(payload []byte) error {
	var p ProcessPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to unmarshal payout payload: %w", err)
	}
	return s.Process(p.PayoutID)
}
