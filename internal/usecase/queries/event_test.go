//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"timebook/internal/infra"
	"timebook/internal/usecase/queries"
	"timebook/tests/common/builder"
	queriesmock "timebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	newQueries := func(t *testing.T) (queries.EventQueries, *queriesmock.MockEventReadStore) {
		t.Helper()
		ctrl := gomock.NewController(t)
		reads := queriesmock.NewMockEventReadStore(ctrl)
		return queries.NewEventQueries(reads), reads
	}

	t.Run("returns the owner's event", func(t *testing.T) {
		q, reads := newQueries(t)
		view := builder.NewEventBuilder().BuildView()

		reads.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.OwnerID, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("hides another owner's event behind not-found", func(t *testing.T) {
		q, reads := newQueries(t)
		view := builder.NewEventBuilder().BuildView()

		reads.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := q.GetByID(ctx, uuid.New(), view.ID)
		assert.ErrorIs(t, err, queries.ErrEventNotFound)
	})

	t.Run("maps store not-found", func(t *testing.T) {
		q, reads := newQueries(t)
		id := uuid.New()

		reads.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound))

		_, err := q.GetByID(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, queries.ErrEventNotFound)
	})

	t.Run("maps store failures to read errors", func(t *testing.T) {
		q, reads := newQueries(t)
		id := uuid.New()

		reads.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))

		_, err := q.GetByID(ctx, uuid.New(), id)
		assert.ErrorIs(t, err, queries.ErrEventReadFailed)
	})
}
