package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bokaenkelt/config"
	"bokaenkelt/models"
	"bokaenkelt/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReminderSend is the asynq task type for appointment reminders.
const TypeReminderSend = "reminder:send"

// ReminderLeadTime is how long before the appointment the reminder fires.
const ReminderLeadTime = 12 * time.Hour

// RedisQueueOpt returns the asynq redis connection for the reminder queue.
func RedisQueueOpt() asynq.RedisClientOpt {
	cfg := config.AppConfig
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderQueueDB,
	}
}

func reminderTaskID(bookingID string) string {
	return "reminder:" + bookingID
}

// NewReminderTask builds the reminder task for a booking, scheduled at the
// given instant. The task ID is derived from the booking ID so rescheduling
// the same booking can never produce two pending reminders.
func NewReminderTask(bookingID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(models.ReminderPayload{BookingID: bookingID})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	opts := []asynq.Option{
		asynq.TaskID(reminderTaskID(bookingID)),
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
	}
	return asynq.NewTask(TypeReminderSend, payload), opts, nil
}

// AsynqReminderScheduler schedules reminder tasks on the asynq queue.
type AsynqReminderScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
}

// NewAsynqReminderScheduler connects a scheduler to the reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	opt := RedisQueueOpt()
	return &AsynqReminderScheduler{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
	}
}

// Schedule enqueues the booking's reminder at appointment time minus the lead
// time. Appointments too close for a reminder are skipped silently.
func (s *AsynqReminderScheduler) Schedule(booking *models.Booking) error {
	startsAt, err := booking.StartsAt(time.Local)
	if err != nil {
		return fmt.Errorf("failed to resolve appointment time: %w", err)
	}
	fireAt := startsAt.Add(-ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Debug("appointment too close, skipping reminder",
			zap.String("bookingID", booking.ID))
		return nil
	}

	task, opts, err := NewReminderTask(booking.ID, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Cancel removes the booking's pending reminder from the queue. A reminder
// that no longer exists is not an error.
func (s *AsynqReminderScheduler) Cancel(bookingID string) error {
	err := s.inspector.DeleteTask("default", reminderTaskID(bookingID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete reminder task: %w", err)
}

// Close releases the queue connections.
func (s *AsynqReminderScheduler) Close() error {
	if err := s.inspector.Close(); err != nil {
		return err
	}
	return s.client.Close()
}
