package day

import (
	"time"

	"timebook/internal/domain/booking"

	"github.com/google/uuid"
)

// Day is a user-scoped calendar date record. Its events set cross-references
// every event with at least one active allocation landing on this date from
// a different occurrence day. Days are created elsewhere; this core only
// maintains membership.
type Day struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	date      booking.Date
	events    []uuid.UUID
	updatedAt time.Time
}

func ReconstructDay(id, ownerID uuid.UUID, date booking.Date, events []uuid.UUID, updatedAt time.Time) *Day {
	return &Day{
		id:        id,
		ownerID:   ownerID,
		date:      date,
		events:    events,
		updatedAt: updatedAt,
	}
}

func (d *Day) ID() uuid.UUID        { return d.id }
func (d *Day) OwnerID() uuid.UUID   { return d.ownerID }
func (d *Day) Date() booking.Date   { return d.date }
func (d *Day) Events() []uuid.UUID  { return d.events }
func (d *Day) UpdatedAt() time.Time { return d.updatedAt }

func (d *Day) Contains(eventID uuid.UUID) bool {
	for _, id := range d.events {
		if id == eventID {
			return true
		}
	}
	return false
}

// AttachEvent is an idempotent set-insert. It reports whether the set
// actually changed.
func (d *Day) AttachEvent(eventID uuid.UUID) bool {
	if d.Contains(eventID) {
		return false
	}
	d.events = append(d.events, eventID)
	return true
}

// DetachEvent removes the event from the membership set.
func (d *Day) DetachEvent(eventID uuid.UUID) bool {
	for i, id := range d.events {
		if id == eventID {
			d.events = append(d.events[:i], d.events[i+1:]...)
			return true
		}
	}
	return false
}

// ShouldAttach reports whether a booking on toDate must be cross-referenced
// on that day's record. Same-day allocations stay implicit: the event already
// belongs to its own occurrence date.
func ShouldAttach(eventOccurredAtMS int64, toDate booking.Date) bool {
	return !booking.DateOfMillis(eventOccurredAtMS).Equal(toDate)
}

// ShouldDetach is the delete-side counterpart of ShouldAttach. The event
// stays attached while any other detail still targets the same date.
func ShouldDetach(eventOccurredAtMS int64, toDate booking.Date, remainingOnDate int) bool {
	return ShouldAttach(eventOccurredAtMS, toDate) && remainingOnDate == 0
}
