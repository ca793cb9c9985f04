package queries

import (
	"context"
	"time"

	"timebook/internal/infra"
	"timebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound   = errs.New("event not found")
	ErrEventReadFailed = errs.New("failed to read event")
)

type BookingDetailView struct {
	ID     uuid.UUID
	ToDate string
	Amount float64
}

type WorkLogView struct {
	Title    string
	Duration float64
}

// EventView is the read projection returned to callers after booking
// operations and lookups.
type EventView struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	OccurredAtMS   int64
	Duration       float64
	DurationBooked float64
	FullyBooked    bool
	BookingDetails []BookingDetailView
	WorkLogs       []WorkLogView
	DayID          *uuid.UUID
	UpdatedAt      time.Time
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	reads EventReadStore
}

func NewEventQueries(reads EventReadStore) EventQueries {
	return &eventQueriesImpl{reads: reads}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*EventView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Mark(err, ErrEventReadFailed)
	}
	if view.OwnerID != ownerID {
		// Hide other owners' events behind not-found.
		return nil, ErrEventNotFound
	}
	return view, nil
}
