//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timebook/internal/infra"
	"timebook/internal/usecase/queries"
	queriesmock "timebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDayQueries_GetByDate(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	newQueries := func(t *testing.T) (queries.DayQueries, *queriesmock.MockDayReadStore) {
		t.Helper()
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockDayReadStore(ctrl)
		return queries.NewDayQueries(reads), reads
	}

	t.Run("returns the day for a canonical date", func(t *testing.T) {
		q, reads := newQueries(t)
		view := &queries.DayView{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Date:      "2024-03-06",
			Events:    []uuid.UUID{uuid.New()},
			UpdatedAt: time.Now().UTC(),
		}

		reads.EXPECT().FindByOwnerAndDate(ctx, ownerID, gomock.Any()).Return(view, nil)

		got, err := q.GetByDate(ctx, ownerID, "2024-03-06")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("a malformed date is a validation failure without a store access", func(t *testing.T) {
		q, _ := newQueries(t)

		_, err := q.GetByDate(ctx, ownerID, "06.03.2024")
		assert.ErrorIs(t, err, queries.ErrDayInvalidDate)
	})

	t.Run("maps store not-found", func(t *testing.T) {
		q, reads := newQueries(t)

		reads.EXPECT().FindByOwnerAndDate(ctx, ownerID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound))

		_, err := q.GetByDate(ctx, ownerID, "2024-03-06")
		assert.ErrorIs(t, err, queries.ErrDayNotFound)
	})

	t.Run("maps store failures to read errors", func(t *testing.T) {
		q, reads := newQueries(t)

		reads.EXPECT().FindByOwnerAndDate(ctx, ownerID, gomock.Any()).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))

		_, err := q.GetByDate(ctx, ownerID, "2024-03-06")
		assert.ErrorIs(t, err, queries.ErrDayReadFailed)
	})
}
