package commands

import (
	"context"
	"time"

	"shareit/internal/domain/comment"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCommentNotAllowed = errs.New("no completed booking to comment on")
	ErrInvalidComment    = errs.New("invalid comment")
)

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *comment.Comment) (uuid.UUID, error)
}

// BookingHistoryReader answers whether the author has finished renting the
// item: an approved booking that ended before the given instant.
type BookingHistoryReader interface {
	HasCompletedApprovedBooking(ctx context.Context, itemID, bookerID uuid.UUID, before time.Time) (bool, error)
}

type CommentCommands interface {
	AddComment(ctx context.Context, req reqdto.CreateCommentRequest, itemID, authorID uuid.UUID) (*queries.CommentView, error)
}

type commentUseCaseImpl struct {
	commentRepo CommentRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	history     BookingHistoryReader
	db          shared.Beginner
	clock       clock.Clock
}

func NewCommentUseCase(
	commentRepo CommentRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	history BookingHistoryReader,
	db shared.Beginner,
	clock clock.Clock,
) CommentCommands {
	return &commentUseCaseImpl{
		commentRepo: commentRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		history:     history,
		db:          db,
		clock:       clock,
	}
}

func (u *commentUseCaseImpl) AddComment(
	ctx context.Context,
	req reqdto.CreateCommentRequest,
	itemID, authorID uuid.UUID,
) (*queries.CommentView, error) {
	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	author, err := u.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := u.clock.Now()

	eligible, err := u.history.HasCompletedApprovedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !eligible {
		return nil, ErrCommentNotAllowed
	}

	entity, err := comment.NewComment(itemID, authorID, req.Text, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidComment)
	}

	id, err := shared.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (uuid.UUID, error) {
		return u.commentRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.CommentView{
		ID:         id,
		Text:       entity.Text(),
		AuthorName: author.Name,
		Created:    entity.CreatedAt(),
	}, nil
}
