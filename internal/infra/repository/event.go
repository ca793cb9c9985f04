package repository

import (
	"context"
	"errors"

	"timebook/internal/domain/event"
	"timebook/internal/infra"
	"timebook/internal/infra/converter"
	"timebook/internal/infra/pgexec"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, owner_id, title, occurred_at_ms, duration, duration_booked,
       fully_booked, booking_details, work_logs, day_id, updated_at`

// EventRepository performs the write-side, single-document operations on the
// events collection. The mutating statements are conditional on the stored
// duration_booked so a concurrent write surfaces as CONFLICT instead of a
// lost update.
type EventRepository struct {
	db pgexec.Querier
}

func NewEventRepository(db pgexec.Querier) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)

	return r.scanDomain(row, "event")
}

func (r *EventRepository) FindByBookingDetailID(ctx context.Context, detailID uuid.UUID) (*event.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE booking_details @> jsonb_build_array(jsonb_build_object('id', $1::text))`,
		detailID.String())

	return r.scanDomain(row, "booking detail")
}

func (r *EventRepository) AppendBookingDetail(
	ctx context.Context,
	eventID uuid.UUID,
	detail event.BookingDetail,
	expectedBooked, newBooked float64,
	fullyBooked bool,
) (*queries.EventView, error) {
	raw, err := converter.MarshalDetail(detail)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode booking detail", err)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE events
		 SET booking_details = booking_details || $2::jsonb,
		     duration_booked = $3,
		     fully_booked    = $4,
		     updated_at      = now()
		 WHERE id = $1 AND duration_booked = $5
		 RETURNING `+eventColumns,
		eventID, raw, newBooked, fullyBooked, expectedBooked)

	return r.scanConditionalWrite(ctx, row, eventID)
}

func (r *EventRepository) RemoveBookingDetail(
	ctx context.Context,
	eventID, detailID uuid.UUID,
	expectedBooked, newBooked float64,
	fullyBooked bool,
) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE events
		 SET booking_details = (
		         SELECT COALESCE(jsonb_agg(d), '[]'::jsonb)
		         FROM jsonb_array_elements(booking_details) AS d
		         WHERE d->>'id' <> $2
		     ),
		     duration_booked = $3,
		     fully_booked    = $4,
		     updated_at      = now()
		 WHERE id = $1 AND duration_booked = $5
		 RETURNING `+eventColumns,
		eventID, detailID.String(), newBooked, fullyBooked, expectedBooked)

	return r.scanConditionalWrite(ctx, row, eventID)
}

func (r *EventRepository) scanDomain(row pgx.Row, what string) (*event.Event, error) {
	eventRow, err := scanEventRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find "+what, err)
	}

	ev, err := converter.EventRowToDomain(eventRow)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map event row", err)
	}
	return ev, nil
}

// scanConditionalWrite interprets an empty RETURNING set: the event either
// moved under us (CONFLICT, retryable) or no longer exists (NOT_FOUND).
func (r *EventRepository) scanConditionalWrite(ctx context.Context, row pgx.Row, eventID uuid.UUID) (*queries.EventView, error) {
	eventRow, err := scanEventRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if checkErr := r.db.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID,
			).Scan(&exists); checkErr != nil {
				return nil, infra.WrapRepoErr("failed to check event existence", checkErr)
			}
			if exists {
				return nil, infra.WrapRepoErr("event changed concurrently", err, infra.KindConflict)
			}
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update event", err)
	}

	view, err := converter.EventRowToView(eventRow)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map event row", err)
	}
	return view, nil
}

func scanEventRow(row pgx.Row) (*converter.EventRow, error) {
	var r converter.EventRow
	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Title,
		&r.OccurredAtMS,
		&r.Duration,
		&r.DurationBooked,
		&r.FullyBooked,
		&r.BookingDetails,
		&r.WorkLogs,
		&r.DayID,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
