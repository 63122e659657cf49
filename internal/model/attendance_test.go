package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkHours(t *testing.T) {
	checkIn := time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)

	t.Run("pending while clocked in", func(t *testing.T) {
		assert.Equal(t, WorkHoursPending, WorkHours(checkIn, nil))
	})

	t.Run("normal shift", func(t *testing.T) {
		out := checkIn.Add(8*time.Hour + 30*time.Minute)
		assert.Equal(t, "8小時30分鐘", WorkHours(checkIn, &out))
	})

	t.Run("exact hour", func(t *testing.T) {
		out := checkIn.Add(8 * time.Hour)
		assert.Equal(t, "8小時0分鐘", WorkHours(checkIn, &out))
	})

	t.Run("under an hour", func(t *testing.T) {
		out := checkIn.Add(45 * time.Minute)
		assert.Equal(t, "0小時45分鐘", WorkHours(checkIn, &out))
	})

	// A checkout recorded before its checkin renders the same negative
	// value the clock screens have always shown.
	t.Run("inverted interval", func(t *testing.T) {
		out := checkIn.Add(-(1*time.Hour + 30*time.Minute))
		assert.Equal(t, "-2小時-30分鐘", WorkHours(checkIn, &out))
	})

	t.Run("seconds are truncated", func(t *testing.T) {
		out := checkIn.Add(1*time.Hour + 59*time.Minute + 59*time.Second)
		assert.Equal(t, "1小時59分鐘", WorkHours(checkIn, &out))
	})
}

func TestWorkHoursOf(t *testing.T) {
	checkIn := time.Date(2024, 3, 18, 9, 0, 0, 0, time.UTC)
	out := checkIn.Add(2 * time.Hour)
	record := &AttendanceRecord{CheckInTime: checkIn, CheckOutTime: &out}
	assert.Equal(t, "2小時0分鐘", record.WorkHoursOf())
}
