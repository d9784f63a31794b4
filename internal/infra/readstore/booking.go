package readstore

import (
	"context"
	"errors"
	"time"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func selectBookingView() sq.SelectBuilder {
	return psql.Select(
		"b.id",
		"b.start_date",
		"b.end_date",
		"b.status",
		"u.id",
		"u.name",
		"i.id",
		"i.name",
		"i.owner_id",
	).
		From("bookings b").
		Join("users u ON u.id = b.booker_id").
		Join("items i ON i.id = b.item_id")
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.Start,
		&v.End,
		&v.Status,
		&v.Booker.ID,
		&v.Booker.Name,
		&v.Item.ID,
		&v.Item.Name,
		&v.ItemOwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := selectBookingView().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	view, err := scanBookingView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByBooker(
	ctx context.Context,
	bookerID uuid.UUID,
	cond queries.BookingConditions,
	limit, offset int32,
) ([]*queries.BookingView, error) {
	builder := selectBookingView().Where(sq.Eq{"b.booker_id": bookerID})
	return s.list(ctx, builder, cond, limit, offset)
}

func (s *BookingReadStore) FindByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	cond queries.BookingConditions,
	limit, offset int32,
) ([]*queries.BookingView, error) {
	builder := selectBookingView().Where(sq.Eq{"i.owner_id": ownerID})
	return s.list(ctx, builder, cond, limit, offset)
}

func (s *BookingReadStore) list(
	ctx context.Context,
	builder sq.SelectBuilder,
	cond queries.BookingConditions,
	limit, offset int32,
) ([]*queries.BookingView, error) {
	builder = applyConditions(builder, cond).
		OrderBy("b.start_date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func applyConditions(builder sq.SelectBuilder, cond queries.BookingConditions) sq.SelectBuilder {
	switch {
	case cond.Status != nil:
		builder = builder.Where(sq.Eq{"b.status": cond.Status.String()})
	case cond.EndBefore != nil:
		builder = builder.Where(sq.Lt{"b.end_date": *cond.EndBefore})
	case cond.StartAfter != nil:
		builder = builder.Where(sq.Gt{"b.start_date": *cond.StartAfter})
	case cond.CurrentAt != nil:
		builder = builder.Where(sq.LtOrEq{"b.start_date": *cond.CurrentAt}).
			Where(sq.GtOrEq{"b.end_date": *cond.CurrentAt})
	}
	return builder
}

// HasCompletedApprovedBooking reports whether the booker finished an approved
// rental of the item before the given instant.
func (s *BookingReadStore) HasCompletedApprovedBooking(
	ctx context.Context,
	itemID, bookerID uuid.UUID,
	before time.Time,
) (bool, error) {
	query, args, err := psql.Select("1").
		From("bookings").
		Where(sq.Eq{"item_id": itemID, "booker_id": bookerID, "status": "APPROVED"}).
		Where(sq.Lt{"end_date": before}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build eligibility query", err)
	}

	var one int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check booking history", err)
	}
	return true, nil
}
