package event

import (
	"errors"
	"fmt"

	"timebook/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrDetailNotFound = errors.New("booking detail not found on event")

// CapacityError rejects an allocation that would overshoot the event's
// duration. Available carries the remaining bookable hours so the caller can
// retry with a smaller amount.
type CapacityError struct {
	Requested float64
	Available float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("unallowed amount: %gh, available booking hours: %gh", e.Requested, e.Available)
}

// BookingResult is the computed outcome of placing one allocation.
type BookingResult struct {
	Detail         BookingDetail
	DurationBooked float64
	FullyBooked    bool
}

// ComputeBooking decides whether an allocation fits the event's remaining
// capacity and derives the post-write projection fields. It must run against
// a freshly fetched event; the caller's conditional write revalidates that
// the state has not moved underneath it.
func ComputeBooking(e *Event, toDate booking.Date, amount booking.Amount) (BookingResult, error) {
	existing := e.BookedSum()
	booked := existing + amount.Hours()

	if booked > e.duration {
		return BookingResult{}, &CapacityError{
			Requested: amount.Hours(),
			Available: e.duration - existing,
		}
	}

	return BookingResult{
		Detail: BookingDetail{
			ID:     uuid.New(),
			ToDate: toDate,
			Amount: amount,
		},
		DurationBooked: booked,
		// Exact equality: an event is fully booked only when every hour is
		// allocated, not when the sum merely reaches the duration.
		FullyBooked: booked == e.duration,
	}, nil
}

// RemovalResult is the computed outcome of removing one allocation.
type RemovalResult struct {
	Removed        BookingDetail
	DurationBooked float64
	// FullyBooked is unconditionally false after any removal. It is reset,
	// not recomputed, even when the remaining details would still sum to the
	// full duration. That mirrors the reference semantics and is preserved
	// on purpose.
	FullyBooked bool
	// RemainingOnDate counts the other details still targeting the removed
	// detail's date; the membership index detaches only when it reaches zero.
	RemainingOnDate int
}

// ComputeRemoval derives the ledger updates for deleting a detail. A missing
// detail is an ordinary not-found: under concurrent deletes the detail may
// legitimately be gone by the time this runs.
func ComputeRemoval(e *Event, detailID uuid.UUID) (RemovalResult, error) {
	detail, ok := e.DetailByID(detailID)
	if !ok {
		return RemovalResult{}, ErrDetailNotFound
	}

	return RemovalResult{
		Removed:         detail,
		DurationBooked:  e.durationBooked - detail.Amount.Hours(),
		FullyBooked:     false,
		RemainingOnDate: e.DetailsOn(detail.ToDate) - 1,
	}, nil
}
