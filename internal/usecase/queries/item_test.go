//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemQueriesMocks struct {
	items        *queriesmock.MockItemViewRepo
	comments     *queriesmock.MockCommentViewRepo
	availability *queriesmock.MockAvailabilityQueries
}

func newItemQueriesForTest(t *testing.T) (itemQueriesMocks, queries.ItemQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := itemQueriesMocks{
		items:        queriesmock.NewMockItemViewRepo(ctrl),
		comments:     queriesmock.NewMockCommentViewRepo(ctrl),
		availability: queriesmock.NewMockAvailabilityQueries(ctrl),
	}
	return m, queries.NewItemQueries(m.items, m.comments, m.availability)
}

func TestItemQueries_GetByID(t *testing.T) {
	ownerID := uuid.New()
	itemID := uuid.New()

	baseView := func() *queries.ItemDetailView {
		return &queries.ItemDetailView{
			ID:        itemID,
			Name:      "drill",
			Available: true,
			OwnerID:   ownerID,
		}
	}
	comments := []queries.CommentView{{ID: uuid.New(), Text: "works great", AuthorName: "alice"}}

	t.Run("owner sees last and next bookings", func(t *testing.T) {
		m, q := newItemQueriesForTest(t)
		last := &queries.BookingRef{ID: uuid.New(), Start: fixedNow.Add(-time.Hour), End: fixedNow.Add(-time.Minute)}

		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(baseView(), nil)
		m.comments.EXPECT().FindByItem(gomock.Any(), itemID).Return(comments, nil)
		m.availability.EXPECT().ForItem(gomock.Any(), itemID).Return(queries.ItemAvailability{Last: last}, nil)

		view, err := q.GetByID(context.Background(), ownerID, itemID)
		require.NoError(t, err)
		assert.Equal(t, last, view.LastBooking)
		assert.Nil(t, view.NextBooking)
		assert.Equal(t, comments, view.Comments)
	})

	t.Run("non-owner gets comments but no booking data", func(t *testing.T) {
		m, q := newItemQueriesForTest(t)

		m.items.EXPECT().FindByID(gomock.Any(), itemID).Return(baseView(), nil)
		m.comments.EXPECT().FindByItem(gomock.Any(), itemID).Return(comments, nil)

		view, err := q.GetByID(context.Background(), uuid.New(), itemID)
		require.NoError(t, err)
		assert.Nil(t, view.LastBooking)
		assert.Nil(t, view.NextBooking)
		assert.Equal(t, comments, view.Comments)
	})

	t.Run("missing item", func(t *testing.T) {
		m, q := newItemQueriesForTest(t)
		m.items.EXPECT().FindByID(gomock.Any(), itemID).
			Return(nil, infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), ownerID, itemID)
		assert.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestItemQueries_ListByOwner(t *testing.T) {
	ownerID := uuid.New()
	itemA := uuid.New()
	itemB := uuid.New()
	page := queries.Page{Limit: 20, Offset: 0}

	t.Run("availability resolved for the whole page at once", func(t *testing.T) {
		m, q := newItemQueriesForTest(t)

		views := []*queries.ItemDetailView{
			{ID: itemA, OwnerID: ownerID},
			{ID: itemB, OwnerID: ownerID},
		}
		next := &queries.BookingRef{ID: uuid.New(), Start: fixedNow.Add(time.Hour), End: fixedNow.Add(2 * time.Hour)}

		m.items.EXPECT().FindByOwner(gomock.Any(), ownerID, int32(20), int32(0)).Return(views, nil)
		m.availability.EXPECT().ForItems(gomock.Any(), []uuid.UUID{itemA, itemB}).
			Return(map[uuid.UUID]queries.ItemAvailability{
				itemA: {Next: next},
			}, nil)

		got, err := q.ListByOwner(context.Background(), ownerID, page)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, next, got[0].NextBooking)
		assert.Nil(t, got[1].NextBooking)
		assert.Nil(t, got[1].LastBooking)
	})

	t.Run("no items short-circuits", func(t *testing.T) {
		m, q := newItemQueriesForTest(t)
		m.items.EXPECT().FindByOwner(gomock.Any(), ownerID, int32(20), int32(0)).
			Return([]*queries.ItemDetailView{}, nil)

		got, err := q.ListByOwner(context.Background(), ownerID, page)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
