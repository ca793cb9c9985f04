package event

import (
	"time"

	"timebook/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingDetail is one allocation of an event's duration onto a target
// calendar date. It is owned by exactly one event.
type BookingDetail struct {
	ID     uuid.UUID
	ToDate booking.Date
	Amount booking.Amount
}

// WorkLog is a recorded slice of the work the event stands for.
type WorkLog struct {
	Title    string
	Duration float64
}

// Event is a unit of recorded work with a fixed bookable duration.
// durationBooked and fullyBooked are cached projections over bookingDetails;
// after any committed write durationBooked equals the recomputed sum and
// never exceeds duration.
type Event struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	title          string
	occurredAtMS   int64
	duration       float64
	durationBooked float64
	fullyBooked    bool
	bookingDetails []BookingDetail
	workLogs       []WorkLog
	dayID          *uuid.UUID
	updatedAt      time.Time
}

func ReconstructEvent(
	id, ownerID uuid.UUID,
	title string,
	occurredAtMS int64,
	duration, durationBooked float64,
	fullyBooked bool,
	bookingDetails []BookingDetail,
	workLogs []WorkLog,
	dayID *uuid.UUID,
	updatedAt time.Time,
) *Event {
	return &Event{
		id:             id,
		ownerID:        ownerID,
		title:          title,
		occurredAtMS:   occurredAtMS,
		duration:       duration,
		durationBooked: durationBooked,
		fullyBooked:    fullyBooked,
		bookingDetails: bookingDetails,
		workLogs:       workLogs,
		dayID:          dayID,
		updatedAt:      updatedAt,
	}
}

func (e *Event) ID() uuid.UUID                   { return e.id }
func (e *Event) OwnerID() uuid.UUID              { return e.ownerID }
func (e *Event) Title() string                   { return e.title }
func (e *Event) OccurredAtMS() int64             { return e.occurredAtMS }
func (e *Event) Duration() float64               { return e.duration }
func (e *Event) DurationBooked() float64         { return e.durationBooked }
func (e *Event) FullyBooked() bool               { return e.fullyBooked }
func (e *Event) BookingDetails() []BookingDetail { return e.bookingDetails }
func (e *Event) WorkLogs() []WorkLog             { return e.workLogs }
func (e *Event) DayID() *uuid.UUID               { return e.dayID }
func (e *Event) UpdatedAt() time.Time            { return e.updatedAt }

// OccurrenceDate is the UTC calendar day the event itself happened on.
func (e *Event) OccurrenceDate() booking.Date {
	return booking.DateOfMillis(e.occurredAtMS)
}

// BookedSum recomputes the allocated hours from the details themselves,
// independent of the cached durationBooked projection.
func (e *Event) BookedSum() float64 {
	var sum float64
	for _, d := range e.bookingDetails {
		sum += d.Amount.Hours()
	}
	return sum
}

func (e *Event) DetailByID(id uuid.UUID) (BookingDetail, bool) {
	for _, d := range e.bookingDetails {
		if d.ID == id {
			return d, true
		}
	}
	return BookingDetail{}, false
}

// DetailsOn counts the details targeting the given date.
func (e *Event) DetailsOn(date booking.Date) int {
	n := 0
	for _, d := range e.bookingDetails {
		if d.ToDate.Equal(date) {
			n++
		}
	}
	return n
}
