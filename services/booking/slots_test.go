package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHourlySlots(t *testing.T) {
	t.Run("end is included", func(t *testing.T) {
		slots := GenerateHourlySlots("11:00", "13:00")
		assert.Equal(t, []string{"11:00", "12:00", "13:00"}, slots)
	})

	t.Run("full working day", func(t *testing.T) {
		slots := GenerateHourlySlots("10:00", "18:00")
		assert.Len(t, slots, 9)
		assert.Equal(t, "10:00", slots[0])
		assert.Equal(t, "18:00", slots[len(slots)-1])
	})

	t.Run("start after end yields nothing", func(t *testing.T) {
		assert.Empty(t, GenerateHourlySlots("18:00", "10:00"))
	})

	t.Run("start equal to end yields one slot", func(t *testing.T) {
		assert.Equal(t, []string{"09:00", "10:00"}, GenerateHourlySlots("09:00", "10:00"))
		assert.Equal(t, []string{"09:00"}, GenerateHourlySlots("09:00", "09:00"))
	})

	t.Run("unparseable bounds yield nothing", func(t *testing.T) {
		assert.Empty(t, GenerateHourlySlots("morning", "18:00"))
		assert.Empty(t, GenerateHourlySlots("10:00", "25:00"))
	})

	t.Run("non-hour-aligned start keeps the offset", func(t *testing.T) {
		assert.Equal(t, []string{"10:30", "11:30"}, GenerateHourlySlots("10:30", "12:00"))
	})
}

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	_, err = ParseClock("24:00")
	assert.Error(t, err)
	_, err = ParseClock("10:60")
	assert.Error(t, err)
	_, err = ParseClock("1030")
	assert.Error(t, err)

	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestIsDateSelectable(t *testing.T) {
	// A fixed Wednesday afternoon.
	now := time.Date(2026, time.September, 2, 14, 30, 0, 0, time.UTC)
	allDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	t.Run("today is never selectable", func(t *testing.T) {
		today := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsDateSelectable(today, allDays, now))
	})

	t.Run("tomorrow is the earliest selectable date", func(t *testing.T) {
		tomorrow := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
		assert.True(t, IsDateSelectable(tomorrow, allDays, now))
	})

	t.Run("non-working weekday is excluded", func(t *testing.T) {
		// September 7th 2026 is a Monday.
		monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsDateSelectable(monday, []string{"Tuesday", "Wednesday"}, now))
		assert.True(t, IsDateSelectable(monday, []string{"Monday"}, now))
	})

	t.Run("swedish day names resolve", func(t *testing.T) {
		// September 5th 2026 is a Saturday.
		saturday := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
		assert.True(t, IsDateSelectable(saturday, []string{"Lördag"}, now))
		assert.False(t, IsDateSelectable(saturday, []string{"Söndag"}, now))
	})

	t.Run("unknown labels never match", func(t *testing.T) {
		friday := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsDateSelectable(friday, []string{"Funday", ""}, now))
	})
}

func TestKnownWeekday(t *testing.T) {
	assert.True(t, KnownWeekday("Monday"))
	assert.True(t, KnownWeekday("måndag"))
	assert.True(t, KnownWeekday("LÖRDAG"))
	assert.False(t, KnownWeekday("Funday"))
}
