package readstore

import (
	"context"
	"errors"

	"timebook/internal/domain/booking"
	"timebook/internal/infra"
	"timebook/internal/infra/pgexec"
	"timebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DayReadStore struct {
	db pgexec.Querier
}

func NewDayReadStore(db pgexec.Querier) *DayReadStore {
	return &DayReadStore{db: db}
}

func (r *DayReadStore) FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date booking.Date) (*queries.DayView, error) {
	var view queries.DayView
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_id, date, events, updated_at
		 FROM days WHERE owner_id = $1 AND date = $2`,
		ownerID, date.String(),
	).Scan(
		&view.ID,
		&view.OwnerID,
		&view.Date,
		&view.Events,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find day", err)
	}
	return &view, nil
}
