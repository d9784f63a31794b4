//go:build unit

package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func validDates(t *testing.T) DateRange {
	t.Helper()
	r, err := NewDateRange(testStart, testStart.Add(48*time.Hour))
	require.NoError(t, err)
	return r
}

func availableItem(owner uuid.UUID) ItemSpec {
	return ItemSpec{ID: uuid.New(), OwnerID: owner, Available: true}
}

func TestNewBooking(t *testing.T) {
	owner := uuid.New()
	booker := uuid.New()
	end := testStart.Add(48 * time.Hour)

	t.Run("creates waiting booking", func(t *testing.T) {
		item := availableItem(owner)
		b, err := NewBooking(item, booker, testStart, end)

		require.NoError(t, err)
		assert.Equal(t, StatusWaiting, b.Status())
		assert.Equal(t, item.ID, b.ItemID())
		assert.Equal(t, booker, b.BookerID())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("rejects booking own item", func(t *testing.T) {
		item := availableItem(owner)
		_, err := NewBooking(item, owner, testStart, end)

		assert.ErrorIs(t, err, ErrOwnItemBooking)
	})

	t.Run("rejects unavailable item", func(t *testing.T) {
		item := availableItem(owner)
		item.Available = false
		_, err := NewBooking(item, booker, testStart, end)

		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("rejects invalid date range", func(t *testing.T) {
		item := availableItem(owner)
		_, err := NewBooking(item, booker, testStart, testStart.Add(-time.Hour))

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("owner guard fires before date validation", func(t *testing.T) {
		item := availableItem(owner)
		_, err := NewBooking(item, owner, testStart, testStart.Add(-time.Hour))

		assert.ErrorIs(t, err, ErrOwnItemBooking)
		assert.NotErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("availability guard fires before date validation", func(t *testing.T) {
		item := availableItem(owner)
		item.Available = false
		_, err := NewBooking(item, booker, testStart, testStart.Add(-time.Hour))

		assert.ErrorIs(t, err, ErrItemUnavailable)
		assert.NotErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestBooking_Decide(t *testing.T) {
	owner := uuid.New()
	booker := uuid.New()

	newWaiting := func(t *testing.T) *Booking {
		b, err := NewBooking(availableItem(owner), booker, testStart, testStart.Add(48*time.Hour))
		require.NoError(t, err)
		return b
	}

	t.Run("approve from waiting", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))
		assert.Equal(t, StatusApproved, b.Status())
		assert.True(t, b.IsApproved())
	})

	t.Run("reject from waiting", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))
		assert.Equal(t, StatusRejected, b.Status())
	})

	t.Run("approved is terminal", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))

		assert.ErrorIs(t, b.Decide(true), ErrAlreadyDecided)
		assert.ErrorIs(t, b.Decide(false), ErrAlreadyDecided)
		assert.Equal(t, StatusApproved, b.Status())
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(false))

		assert.ErrorIs(t, b.Decide(true), ErrAlreadyDecided)
		assert.Equal(t, StatusRejected, b.Status())
	})
}

func TestBooking_Cancel(t *testing.T) {
	owner := uuid.New()
	booker := uuid.New()

	newWaiting := func(t *testing.T) *Booking {
		b, err := NewBooking(availableItem(owner), booker, testStart, testStart.Add(48*time.Hour))
		require.NoError(t, err)
		return b
	}

	t.Run("cancel from waiting", func(t *testing.T) {
		b := newWaiting(t)

		require.NoError(t, b.Cancel())
		assert.Equal(t, StatusCanceled, b.Status())
	})

	t.Run("cannot cancel decided booking", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Decide(true))

		assert.ErrorIs(t, b.Cancel(), ErrAlreadyDecided)
		assert.Equal(t, StatusApproved, b.Status())
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		b := newWaiting(t)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.Cancel(), ErrAlreadyDecided)
	})
}

func TestReconstructBooking(t *testing.T) {
	id := uuid.New()
	itemID := uuid.New()
	bookerID := uuid.New()
	dates := validDates(t)
	now := time.Now()

	b := ReconstructBooking(id, itemID, bookerID, dates, StatusApproved, now, now)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, StatusApproved, b.Status())
	assert.True(t, b.BookedBy(bookerID))
	assert.False(t, b.BookedBy(uuid.New()))
}
