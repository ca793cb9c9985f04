//go:build unit

package booking_test

import (
	"testing"

	"timebook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "canonical date", input: "2024-03-05"},
		{name: "leap day", input: "2024-02-29"},
		{name: "non-leap february 29th", input: "2023-02-29", errIs: booking.ErrInvalidDate},
		{name: "wrong separator", input: "2024/03/05", errIs: booking.ErrInvalidDate},
		{name: "missing zero padding", input: "2024-3-5", errIs: booking.ErrInvalidDate},
		{name: "empty", input: "", errIs: booking.ErrInvalidDate},
		{name: "free text", input: "tomorrow", errIs: booking.ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := booking.NewDate(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, d.String())
			assert.False(t, d.IsZero())
		})
	}
}

func TestDateOfMillis(t *testing.T) {
	testCases := []struct {
		name     string
		millis   int64
		expected string
	}{
		{name: "midday", millis: 1709640000000, expected: "2024-03-05"},       // 2024-03-05T12:00:00Z
		{name: "exact midnight", millis: 1709596800000, expected: "2024-03-05"}, // 2024-03-05T00:00:00Z
		{name: "last millisecond of day", millis: 1709683199999, expected: "2024-03-05"},
		{name: "first millisecond of next day", millis: 1709683200000, expected: "2024-03-06"},
		{name: "epoch", millis: 0, expected: "1970-01-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.DateOfMillis(tc.millis)
			assert.Equal(t, tc.expected, got.String())

			parsed, err := booking.NewDate(tc.expected)
			require.NoError(t, err)
			assert.True(t, got.Equal(parsed), "truncated date must compare equal to its parsed form")
		})
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
		errIs    error
	}{
		{name: "minimum increment", input: "0.25", expected: 0.25},
		{name: "whole hours", input: "4", expected: 4},
		{name: "fractional hours", input: "1.75", expected: 1.75},
		{name: "below minimum", input: "0.1", errIs: booking.ErrInvalidAmount},
		{name: "zero", input: "0", errIs: booking.ErrInvalidAmount},
		{name: "negative", input: "-2", errIs: booking.ErrInvalidAmount},
		{name: "not a number", input: "two", errIs: booking.ErrInvalidAmount},
		{name: "empty", input: "", errIs: booking.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := booking.ParseAmount(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a.Hours())
		})
	}
}

func TestParseID(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		want := uuid.New()
		got, err := booking.ParseID(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		_, err := booking.ParseID("not-an-id")
		assert.ErrorIs(t, err, booking.ErrInvalidID)
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := booking.ParseID(uuid.Nil.String())
		assert.ErrorIs(t, err, booking.ErrInvalidID)
	})
}
