package readstore

import (
	"context"
	"errors"

	"shareit/internal/infra"
	"shareit/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (s *UserReadStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := psql.Select("1").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build user query", err)
	}

	var one int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return true, nil
}
