package readstore

import (
	"context"
	"errors"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(db db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func selectItemView() sq.SelectBuilder {
	return psql.Select(
		"i.id",
		"i.name",
		"i.description",
		"i.available",
		"i.owner_id",
	).From("items i")
}

func scanItemView(row pgx.Row) (*queries.ItemDetailView, error) {
	var v queries.ItemDetailView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Available, &v.OwnerID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemDetailView, error) {
	query, args, err := selectItemView().Where(sq.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item query", err)
	}

	view, err := scanItemView(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item", err)
	}
	return view, nil
}

func (s *ItemReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*queries.ItemDetailView, error) {
	query, args, err := selectItemView().
		Where(sq.Eq{"i.owner_id": ownerID}).
		OrderBy("i.created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item list query", err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemDetailView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return views, nil
}
