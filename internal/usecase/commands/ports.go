package commands

import (
	"context"

	"timebook/internal/domain/booking"
	"timebook/internal/domain/event"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// EventRepository is the write-side contract against the events collection.
// The append/remove operations are single-document conditional writes: they
// apply only while the stored durationBooked still matches expectedBooked,
// and fail with a CONFLICT kind otherwise. The updated projection is
// returned from the same write, never re-read.
type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	FindByBookingDetailID(ctx context.Context, detailID uuid.UUID) (*event.Event, error)
	AppendBookingDetail(ctx context.Context, eventID uuid.UUID, detail event.BookingDetail, expectedBooked, newBooked float64, fullyBooked bool) (*queries.EventView, error)
	RemoveBookingDetail(ctx context.Context, eventID, detailID uuid.UUID, expectedBooked, newBooked float64, fullyBooked bool) (*queries.EventView, error)
}

// DayRepository maintains the day→event membership index. Both operations
// are idempotent single-document writes; a missing day record is a silent
// no-op, matching the reference store's set-insert against an absent
// document.
type DayRepository interface {
	AttachEvent(ctx context.Context, ownerID uuid.UUID, date booking.Date, eventID uuid.UUID) error
	DetachEvent(ctx context.Context, ownerID uuid.UUID, date booking.Date, eventID uuid.UUID) error
}
