package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "bokaenkelt/database/repository/booking"
	"bokaenkelt/models"
	"bokaenkelt/services/notification"
	"bokaenkelt/services/tasks"
	"bokaenkelt/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderWorker consumes scheduled reminder tasks and delivers the emails.
type ReminderWorker struct {
	server   *asynq.Server
	bookings bookingRepo.BookingRepository
	notifier notification.NotificationService
}

// NewReminderWorker wires a worker against the reminder queue.
func NewReminderWorker(bookings bookingRepo.BookingRepository, notifier notification.NotificationService) *ReminderWorker {
	server := asynq.NewServer(tasks.RedisQueueOpt(), asynq.Config{
		Concurrency: 5,
	})
	return &ReminderWorker{
		server:   server,
		bookings: bookings,
		notifier: notifier,
	}
}

// Start runs the worker in the background. Fatal on startup failure since a
// booking platform without reminders is considered misconfigured.
func (w *ReminderWorker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, w.handleReminder)

	go func() {
		if err := w.server.Run(mux); err != nil {
			utils.GetLogger().Fatal("reminder worker failed", zap.Error(err))
		}
	}()
	utils.GetLogger().Info("reminder worker started")
}

// Shutdown stops the worker, waiting for in-flight tasks.
func (w *ReminderWorker) Shutdown() {
	w.server.Shutdown()
}

// handleReminder loads the booking behind a reminder task and sends the email.
// Cancelled bookings and already-delivered reminders are skipped; the task is
// then done, not retried.
func (w *ReminderWorker) handleReminder(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}
	logger := utils.GetLogger().With(zap.String("bookingID", payload.BookingID))

	booking, err := w.bookings.GetByID(payload.BookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if booking == nil {
		logger.Warn("reminder fired for unknown booking")
		return nil
	}
	if !booking.Status.Active() || booking.ReminderSent {
		logger.Debug("skipping reminder", zap.String("status", string(booking.Status)),
			zap.Bool("reminderSent", booking.ReminderSent))
		return nil
	}

	appointment := fmt.Sprintf("%s kl. %s", booking.Date, booking.Time)
	if err := w.notifier.SendReminder(booking.CustomerEmail, appointment); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	if err := w.bookings.MarkReminderSent(booking.ID); err != nil {
		// The email went out; failing the task here would send it again.
		logger.Error("failed to mark reminder as sent", zap.Error(err))
	}

	logger.Info("reminder delivered", zap.Time("deliveredAt", time.Now()))
	return nil
}
