//go:build unit

package day_test

import (
	"testing"
	"time"

	"timebook/internal/domain/booking"
	"timebook/internal/domain/day"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDay(t *testing.T, events ...uuid.UUID) *day.Day {
	t.Helper()
	date, err := booking.NewDate("2024-03-05")
	require.NoError(t, err)
	return day.ReconstructDay(uuid.New(), uuid.New(), date, events, time.Now())
}

func TestDayMembership(t *testing.T) {
	t.Run("attach adds a new event once", func(t *testing.T) {
		d := newDay(t)
		eventID := uuid.New()

		assert.True(t, d.AttachEvent(eventID))
		assert.True(t, d.Contains(eventID))
		assert.Len(t, d.Events(), 1)

		// Set semantics: a second attach is a no-op.
		assert.False(t, d.AttachEvent(eventID))
		assert.Len(t, d.Events(), 1)
	})

	t.Run("detach removes only the given event", func(t *testing.T) {
		keep := uuid.New()
		gone := uuid.New()
		d := newDay(t, keep, gone)

		assert.True(t, d.DetachEvent(gone))
		assert.False(t, d.Contains(gone))
		assert.True(t, d.Contains(keep))

		assert.False(t, d.DetachEvent(gone))
	})
}

func TestShouldAttach(t *testing.T) {
	occurredAt := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC).UnixMilli()

	testCases := []struct {
		name     string
		toDate   string
		expected bool
	}{
		{name: "same calendar day stays implicit", toDate: "2024-03-05", expected: false},
		{name: "next day attaches", toDate: "2024-03-06", expected: true},
		{name: "previous day attaches", toDate: "2024-03-04", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toDate, err := booking.NewDate(tc.toDate)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, day.ShouldAttach(occurredAt, toDate))
		})
	}

	t.Run("comparison holds at day boundaries", func(t *testing.T) {
		lastMS := time.Date(2024, 3, 5, 23, 59, 59, 999_000_000, time.UTC).UnixMilli()
		toDate, err := booking.NewDate("2024-03-05")
		require.NoError(t, err)

		assert.False(t, day.ShouldAttach(lastMS, toDate))
		assert.True(t, day.ShouldAttach(lastMS+1, toDate))
	})
}

func TestShouldDetach(t *testing.T) {
	occurredAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC).UnixMilli()
	otherDay, err := booking.NewDate("2024-03-06")
	require.NoError(t, err)
	sameDay, err := booking.NewDate("2024-03-05")
	require.NoError(t, err)

	t.Run("detaches when the last allocation on the date goes", func(t *testing.T) {
		assert.True(t, day.ShouldDetach(occurredAt, otherDay, 0))
	})

	t.Run("stays attached while siblings remain", func(t *testing.T) {
		assert.False(t, day.ShouldDetach(occurredAt, otherDay, 1))
		assert.False(t, day.ShouldDetach(occurredAt, otherDay, 3))
	})

	t.Run("never detaches the occurrence day itself", func(t *testing.T) {
		assert.False(t, day.ShouldDetach(occurredAt, sameDay, 0))
	})
}
