package queries

import (
	"context"
	"time"

	"timebook/internal/domain/booking"
	"timebook/internal/infra"
	"timebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDayNotFound    = errs.New("day not found")
	ErrDayInvalidDate = errs.New("invalid day date")
	ErrDayReadFailed  = errs.New("failed to read day")
)

// DayView is the read projection of a calendar day's event membership.
type DayView struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Date      string
	Events    []uuid.UUID
	UpdatedAt time.Time
}

type DayReadStore interface {
	FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date booking.Date) (*DayView, error)
}

type DayQueries interface {
	GetByDate(ctx context.Context, ownerID uuid.UUID, rawDate string) (*DayView, error)
}

type dayQueriesImpl struct {
	reads DayReadStore
}

func NewDayQueries(reads DayReadStore) DayQueries {
	return &dayQueriesImpl{reads: reads}
}

func (q *dayQueriesImpl) GetByDate(ctx context.Context, ownerID uuid.UUID, rawDate string) (*DayView, error) {
	date, err := booking.NewDate(rawDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDayInvalidDate)
	}

	view, err := q.reads.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDayNotFound)
		}
		return nil, errs.Mark(err, ErrDayReadFailed)
	}
	return view, nil
}
