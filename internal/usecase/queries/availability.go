package queries

import (
	"context"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

// ItemAvailability carries the approved booking closest to now on each side:
// the last one already started and the next one yet to start. Either side may
// be absent.
type ItemAvailability struct {
	Last *BookingRef
	Next *BookingRef
}

// ItemBookingRef ties a BookingRef to its item for batched aggregation.
type ItemBookingRef struct {
	ItemID uuid.UUID
	Ref    BookingRef
}

type AvailabilityQueries interface {
	ForItem(ctx context.Context, itemID uuid.UUID) (ItemAvailability, error)
	// ForItems resolves availability for a whole item set in a fixed number
	// of queries, independent of set size.
	ForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]ItemAvailability, error)
}

// AvailabilityRepo returns at most one row per item: the winning approved
// booking on the requested side of the cut-off.
type AvailabilityRepo interface {
	FindLastApproved(ctx context.Context, itemIDs []uuid.UUID, before time.Time) ([]ItemBookingRef, error)
	FindNextApproved(ctx context.Context, itemIDs []uuid.UUID, after time.Time) ([]ItemBookingRef, error)
}

type availabilityQueriesImpl struct {
	repo  AvailabilityRepo
	clock clock.Clock
}

func NewAvailabilityQueries(repo AvailabilityRepo, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clock: clock}
}

func (q *availabilityQueriesImpl) ForItem(ctx context.Context, itemID uuid.UUID) (ItemAvailability, error) {
	result, err := q.ForItems(ctx, []uuid.UUID{itemID})
	if err != nil {
		return ItemAvailability{}, err
	}
	return result[itemID], nil
}

func (q *availabilityQueriesImpl) ForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]ItemAvailability, error) {
	result := make(map[uuid.UUID]ItemAvailability, len(itemIDs))
	if len(itemIDs) == 0 {
		return result, nil
	}

	// One snapshot classifies both sides; a booking can never be last and
	// next at once.
	now := q.clock.Now()

	lasts, err := q.repo.FindLastApproved(ctx, itemIDs, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find last bookings")
	}
	nexts, err := q.repo.FindNextApproved(ctx, itemIDs, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find next bookings")
	}

	for _, row := range lasts {
		ref := row.Ref
		entry := result[row.ItemID]
		entry.Last = &ref
		result[row.ItemID] = entry
	}
	for _, row := range nexts {
		ref := row.Ref
		entry := result[row.ItemID]
		entry.Next = &ref
		result[row.ItemID] = entry
	}
	return result, nil
}
