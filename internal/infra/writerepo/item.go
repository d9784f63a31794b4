package writerepo

import (
	"context"
	"errors"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/commands"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(db db.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ItemSnapshot, error) {
	query, args, err := psql.Select("id", "owner_id", "name", "available").
		From("items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	var snap commands.ItemSnapshot
	err = r.db.QueryRow(ctx, query, args...).Scan(&snap.ID, &snap.OwnerID, &snap.Name, &snap.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return &snap, nil
}

// MarkBooked stamps the item's rental bookkeeping fields after an approval.
func (r *ItemRepository) MarkBooked(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Update("items").
		Set("last_booked_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build item update", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to mark item as booked", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
