package readstore

import (
	"context"
	"errors"

	"timebook/internal/infra"
	"timebook/internal/infra/converter"
	"timebook/internal/infra/pgexec"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EventReadStore struct {
	db pgexec.Querier
}

func NewEventReadStore(db pgexec.Querier) *EventReadStore {
	return &EventReadStore{db: db}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	var row converter.EventRow
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, title, occurred_at_ms, duration, duration_booked,
		        fully_booked, booking_details, work_logs, day_id, updated_at
		 FROM events WHERE id = $1`, id,
	).Scan(
		&row.ID,
		&row.OwnerID,
		&row.Title,
		&row.OccurredAtMS,
		&row.Duration,
		&row.DurationBooked,
		&row.FullyBooked,
		&row.BookingDetails,
		&row.WorkLogs,
		&row.DayID,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	view, err := converter.EventRowToView(&row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map event row", err)
	}
	return view, nil
}
