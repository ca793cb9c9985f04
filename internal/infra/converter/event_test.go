//go:build unit

package converter_test

import (
	"testing"
	"time"

	"timebook/internal/domain/booking"
	"timebook/internal/domain/event"
	"timebook/internal/infra/converter"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow(t *testing.T) *converter.EventRow {
	t.Helper()
	return &converter.EventRow{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Title:          "Weekly maintenance",
		OccurredAtMS:   time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC).UnixMilli(),
		Duration:       8,
		DurationBooked: 2.5,
		FullyBooked:    false,
		BookingDetails: []byte(`[{"id":"0f8fad5b-d9cb-469f-a165-70867728950e","toDate":"2024-03-06","amount":2.5}]`),
		WorkLogs:       []byte(`[{"title":"setup","duration":2},{"title":"teardown","duration":6}]`),
		UpdatedAt:      time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestEventRowToView(t *testing.T) {
	t.Run("maps a persisted row", func(t *testing.T) {
		row := sampleRow(t)

		view, err := converter.EventRowToView(row)
		require.NoError(t, err)

		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, row.OwnerID, view.OwnerID)
		assert.Equal(t, 2.5, view.DurationBooked)
		require.Len(t, view.BookingDetails, 1)
		assert.Equal(t, "2024-03-06", view.BookingDetails[0].ToDate)
		assert.Equal(t, 2.5, view.BookingDetails[0].Amount)
		require.Len(t, view.WorkLogs, 2)
		assert.Equal(t, "setup", view.WorkLogs[0].Title)
	})

	t.Run("empty document arrays decode to empty slices", func(t *testing.T) {
		row := sampleRow(t)
		row.BookingDetails = nil
		row.WorkLogs = nil

		view, err := converter.EventRowToView(row)
		require.NoError(t, err)
		assert.Empty(t, view.BookingDetails)
		assert.Empty(t, view.WorkLogs)
	})

	t.Run("rejects malformed stored documents", func(t *testing.T) {
		row := sampleRow(t)
		row.BookingDetails = []byte(`{"not":"an array"}`)

		_, err := converter.EventRowToView(row)
		assert.Error(t, err)
	})
}

func TestEventRowToDomain(t *testing.T) {
	t.Run("reconstructs the domain event", func(t *testing.T) {
		row := sampleRow(t)

		ev, err := converter.EventRowToDomain(row)
		require.NoError(t, err)

		assert.Equal(t, row.ID, ev.ID())
		assert.Equal(t, "2024-03-04", ev.OccurrenceDate().String())
		assert.Equal(t, 2.5, ev.BookedSum())
		require.Len(t, ev.BookingDetails(), 1)
		assert.Equal(t, "2024-03-06", ev.BookingDetails()[0].ToDate.String())
	})

	t.Run("rejects a stored detail with an invalid date", func(t *testing.T) {
		row := sampleRow(t)
		row.BookingDetails = []byte(`[{"id":"0f8fad5b-d9cb-469f-a165-70867728950e","toDate":"garbage","amount":2.5}]`)

		_, err := converter.EventRowToDomain(row)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("rejects a stored detail below the minimum amount", func(t *testing.T) {
		row := sampleRow(t)
		row.BookingDetails = []byte(`[{"id":"0f8fad5b-d9cb-469f-a165-70867728950e","toDate":"2024-03-06","amount":0.1}]`)

		_, err := converter.EventRowToDomain(row)
		assert.ErrorIs(t, err, booking.ErrInvalidAmount)
	})
}

func TestMarshalDetail(t *testing.T) {
	toDate, err := booking.NewDate("2024-03-06")
	require.NoError(t, err)
	amount, err := booking.NewAmount(1.75)
	require.NoError(t, err)

	detail := event.BookingDetail{ID: uuid.New(), ToDate: toDate, Amount: amount}
	raw, err := converter.MarshalDetail(detail)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":"`+detail.ID.String()+`","toDate":"2024-03-06","amount":1.75}`,
		string(raw))
}
