package repository

import (
	"context"

	"timebook/internal/domain/booking"
	"timebook/internal/infra"
	"timebook/internal/infra/pgexec"

	"github.com/google/uuid"
)

// DayRepository maintains the events membership array on day records. Both
// statements are idempotent single-row writes. Matching no row (the day does
// not exist, or the membership is already in the wanted state) is a no-op,
// mirroring a set-insert against an absent document.
type DayRepository struct {
	db pgexec.Querier
}

func NewDayRepository(db pgexec.Querier) *DayRepository {
	return &DayRepository{db: db}
}

func (r *DayRepository) AttachEvent(ctx context.Context, ownerID uuid.UUID, date booking.Date, eventID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE days
		 SET events = array_append(events, $3), updated_at = now()
		 WHERE owner_id = $1 AND date = $2 AND NOT ($3 = ANY(events))`,
		ownerID, date.String(), eventID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach event to day", err)
	}
	return nil
}

func (r *DayRepository) DetachEvent(ctx context.Context, ownerID uuid.UUID, date booking.Date, eventID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE days
		 SET events = array_remove(events, $3), updated_at = now()
		 WHERE owner_id = $1 AND date = $2`,
		ownerID, date.String(), eventID)
	if err != nil {
		return infra.WrapRepoErr("failed to detach event from day", err)
	}
	return nil
}
