package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"bokaenkelt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminderTask(t *testing.T) {
	fireAt := time.Date(2026, time.September, 9, 23, 0, 0, 0, time.UTC)
	task, opts, err := NewReminderTask("book-1", fireAt)
	require.NoError(t, err)

	assert.Equal(t, TypeReminderSend, task.Type())
	assert.Len(t, opts, 3)

	var payload models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "book-1", payload.BookingID)
}

func TestReminderTaskID(t *testing.T) {
	// A booking's task ID must be stable so a reschedule replaces the
	// pending reminder instead of adding a second one.
	assert.Equal(t, reminderTaskID("book-1"), reminderTaskID("book-1"))
	assert.NotEqual(t, reminderTaskID("book-1"), reminderTaskID("book-2"))
}
