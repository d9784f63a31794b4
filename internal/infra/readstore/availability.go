package readstore

import (
	"context"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

// FindLastApproved returns, per item, the approved booking already started
// before the cut-off that ends latest. DISTINCT ON keeps the winner only, so
// the result size is bounded by the item set.
func (s *AvailabilityReadStore) FindLastApproved(
	ctx context.Context,
	itemIDs []uuid.UUID,
	before time.Time,
) ([]queries.ItemBookingRef, error) {
	builder := psql.Select(
		"DISTINCT ON (b.item_id) b.item_id",
		"b.id",
		"b.booker_id",
		"b.start_date",
		"b.end_date",
	).
		From("bookings b").
		Where(sq.Eq{"b.item_id": itemIDs, "b.status": "APPROVED"}).
		Where(sq.Lt{"b.start_date": before}).
		OrderBy("b.item_id", "b.end_date DESC")

	return s.query(ctx, builder, "last")
}

// FindNextApproved returns, per item, the earliest approved booking starting
// after the cut-off.
func (s *AvailabilityReadStore) FindNextApproved(
	ctx context.Context,
	itemIDs []uuid.UUID,
	after time.Time,
) ([]queries.ItemBookingRef, error) {
	builder := psql.Select(
		"DISTINCT ON (b.item_id) b.item_id",
		"b.id",
		"b.booker_id",
		"b.start_date",
		"b.end_date",
	).
		From("bookings b").
		Where(sq.Eq{"b.item_id": itemIDs, "b.status": "APPROVED"}).
		Where(sq.Gt{"b.start_date": after}).
		OrderBy("b.item_id", "b.start_date ASC")

	return s.query(ctx, builder, "next")
}

func (s *AvailabilityReadStore) query(ctx context.Context, builder sq.SelectBuilder, side string) ([]queries.ItemBookingRef, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build "+side+" booking query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query "+side+" bookings", err)
	}
	defer rows.Close()

	refs := make([]queries.ItemBookingRef, 0)
	for rows.Next() {
		var ref queries.ItemBookingRef
		if err := rows.Scan(&ref.ItemID, &ref.Ref.ID, &ref.Ref.BookerID, &ref.Ref.Start, &ref.Ref.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan "+side+" booking row", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read "+side+" booking rows", err)
	}
	return refs, nil
}
