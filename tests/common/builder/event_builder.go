//go:build unit

package builder

import (
	"time"

	"timebook/internal/domain/booking"
	domevent "timebook/internal/domain/event"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// DetailSpec is a raw allocation used to seed builders. Dates and amounts
// are given in their external string/number form and must be valid.
type DetailSpec struct {
	ID     uuid.UUID
	ToDate string
	Amount float64
}

type EventBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	OccurredAtMS   int64
	Duration       float64
	DurationBooked float64
	FullyBooked    bool
	Details        []DetailSpec
	WorkLogs       []domevent.WorkLog
	DayID          *uuid.UUID
	UpdatedAt      time.Time
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Title:        "Weekly maintenance",
		OccurredAtMS: time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC).UnixMilli(),
		Duration:     8,
		WorkLogs: []domevent.WorkLog{
			{Title: "setup", Duration: 2},
			{Title: "teardown", Duration: 6},
		},
		UpdatedAt: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

// WithDetail appends an allocation and keeps the cached projection fields
// consistent with it.
func (b *EventBuilder) WithDetail(toDate string, amount float64) *EventBuilder {
	b.Details = append(b.Details, DetailSpec{ID: uuid.New(), ToDate: toDate, Amount: amount})
	b.DurationBooked += amount
	b.FullyBooked = b.DurationBooked == b.Duration
	return b
}

// Build methods
func (b *EventBuilder) BuildDomain() *domevent.Event {
	details := make([]domevent.BookingDetail, 0, len(b.Details))
	for _, spec := range b.Details {
		date, err := booking.NewDate(spec.ToDate)
		if err != nil {
			panic(err)
		}
		amount, err := booking.NewAmount(spec.Amount)
		if err != nil {
			panic(err)
		}
		details = append(details, domevent.BookingDetail{ID: spec.ID, ToDate: date, Amount: amount})
	}
	return domevent.ReconstructEvent(
		b.ID, b.OwnerID, b.Title, b.OccurredAtMS,
		b.Duration, b.DurationBooked, b.FullyBooked,
		details, b.WorkLogs, b.DayID, b.UpdatedAt,
	)
}

func (b *EventBuilder) BuildView() *queries.EventView {
	details := make([]queries.BookingDetailView, 0, len(b.Details))
	for _, spec := range b.Details {
		details = append(details, queries.BookingDetailView{ID: spec.ID, ToDate: spec.ToDate, Amount: spec.Amount})
	}
	logs := make([]queries.WorkLogView, 0, len(b.WorkLogs))
	for _, wl := range b.WorkLogs {
		logs = append(logs, queries.WorkLogView{Title: wl.Title, Duration: wl.Duration})
	}
	return &queries.EventView{
		ID:             b.ID,
		OwnerID:        b.OwnerID,
		Title:          b.Title,
		OccurredAtMS:   b.OccurredAtMS,
		Duration:       b.Duration,
		DurationBooked: b.DurationBooked,
		FullyBooked:    b.FullyBooked,
		BookingDetails: details,
		WorkLogs:       logs,
		DayID:          b.DayID,
		UpdatedAt:      b.UpdatedAt,
	}
}
