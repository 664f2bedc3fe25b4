package notification

import (
	"encoding/json"
	"time"

	"unicare/models"

	"github.com/hibiken/asynq"
)

// Task type names shared between the enqueueing services and the worker.
const (
	TypeAppointmentReminder = "reminder:appointment"
	TypeCampaignFanOut      = "campaign:fanout"
)

// NewAppointmentReminderTask builds a reminder task scheduled for fireAt.
func NewAppointmentReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// NewCampaignFanOutTask builds an immediate fan-out task for a campaign.
func NewCampaignFanOutTask(payload models.CampaignPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCampaignFanOut, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	return task, opts, nil
}
