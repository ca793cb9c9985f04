package commands

import (
	"context"
	"log/slog"

	"timebook/internal/domain/booking"
	"timebook/internal/domain/day"
	"timebook/internal/domain/event"
	"timebook/internal/infra"
	"timebook/internal/pkg/config"
	"timebook/internal/pkg/errs"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrValidation              = errs.New("invalid booking request")
	ErrEventNotFound           = errs.New("event not found")
	ErrBookingNotFound         = errs.New("booking detail not found")
	ErrCapacityExceeded        = errs.New("booking capacity exceeded")
	ErrConflictRetryExhausted  = errs.New("event changed concurrently, retries exhausted")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// BookRequest carries the raw request strings; validation happens here, in
// one combined pass, before anything is read or written.
type BookRequest struct {
	EventID string
	Day     string
	Amount  string
}

type BookingCommands interface {
	Book(ctx context.Context, ownerID uuid.UUID, req BookRequest) (*queries.EventView, error)
	Cancel(ctx context.Context, ownerID uuid.UUID, bookingDetailID string) (*queries.EventView, error)
}

type bookingCommandsImpl struct {
	events  EventRepository
	days    DayRepository
	retries int
}

func NewBookingCommands(events EventRepository, days DayRepository, cfg config.Config) BookingCommands {
	retries := cfg.Booking.WriteRetries
	if retries < 1 {
		retries = 1
	}
	return &bookingCommandsImpl{
		events:  events,
		days:    days,
		retries: retries,
	}
}

// Book allocates part of an event's duration onto a calendar day.
//
// The day membership update and the event commit are two independently
// committed single-document writes; there is no cross-document transaction.
// The day attach is issued first as a best-effort prepare step, so the worst
// partial-failure mode is a phantom membership (day references an event that
// never got the detail), never a missing one. The event commit itself is
// conditional on the durationBooked the capacity check was computed from and
// is retried a bounded number of times on conflict, closing the lost-update
// race between concurrent bookings of the same event.
func (b *bookingCommandsImpl) Book(ctx context.Context, ownerID uuid.UUID, req BookRequest) (*queries.EventView, error) {
	eventID, toDate, amount, err := validateBookRequest(req)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < b.retries; attempt++ {
		ev, err := b.events.FindByID(ctx, eventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrEventNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result, err := event.ComputeBooking(ev, toDate, amount)
		if err != nil {
			// Carries *event.CapacityError for the remaining-hours figure.
			return nil, errs.Mark(err, ErrCapacityExceeded)
		}

		if day.ShouldAttach(ev.OccurredAtMS(), toDate) {
			if attachErr := b.days.AttachEvent(ctx, ownerID, toDate, ev.ID()); attachErr != nil {
				// Reported, not fatal: the event commit still proceeds and a
				// reconciliation sweep can repair the missing membership.
				slog.Error("day membership attach failed",
					"event_id", ev.ID(), "date", toDate.String(), "error", attachErr)
			}
		}

		view, err := b.events.AppendBookingDetail(ctx, ev.ID(), result.Detail, ev.DurationBooked(), result.DurationBooked, result.FullyBooked)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				continue
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrEventNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return view, nil
	}

	return nil, ErrConflictRetryExhausted
}

// Cancel reverses one allocation. Write order is the mirror of Book: the
// event commit goes first, then the day detach, so a failure between the two
// leaves a phantom membership rather than a dangling detail.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, ownerID uuid.UUID, bookingDetailID string) (*queries.EventView, error) {
	detailID, err := booking.ParseID(bookingDetailID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	for attempt := 0; attempt < b.retries; attempt++ {
		ev, err := b.events.FindByBookingDetailID(ctx, detailID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrBookingNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		removal, err := event.ComputeRemoval(ev, detailID)
		if err != nil {
			// Reachable under concurrent deletes; an ordinary not-found.
			return nil, errs.Mark(err, ErrBookingNotFound)
		}

		view, err := b.events.RemoveBookingDetail(ctx, ev.ID(), detailID, ev.DurationBooked(), removal.DurationBooked, removal.FullyBooked)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				continue
			}
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrBookingNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if day.ShouldDetach(ev.OccurredAtMS(), removal.Removed.ToDate, removal.RemainingOnDate) {
			if detachErr := b.days.DetachEvent(ctx, ownerID, removal.Removed.ToDate, ev.ID()); detachErr != nil {
				// The event write is already committed; the caller must treat
				// the state as partially applied.
				return nil, errs.Mark(detachErr, ErrDatabaseOperationFailed)
			}
		}
		return view, nil
	}

	return nil, ErrConflictRetryExhausted
}

// validateBookRequest runs all shape checks and reports a single combined
// validation error, without partial-success detail.
func validateBookRequest(req BookRequest) (uuid.UUID, booking.Date, booking.Amount, error) {
	eventID, idErr := booking.ParseID(req.EventID)
	toDate, dateErr := booking.NewDate(req.Day)
	amount, amountErr := booking.ParseAmount(req.Amount)

	for _, err := range []error{idErr, dateErr, amountErr} {
		if err != nil {
			return uuid.Nil, booking.Date{}, booking.Amount{}, errs.Mark(err, ErrValidation)
		}
	}
	return eventID, toDate, amount, nil
}
