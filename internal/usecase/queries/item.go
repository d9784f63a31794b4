package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	// GetByID returns the item enriched with its comments. Last/next booking
	// data is attached for the owner only.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ItemDetailView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemDetailView, error)
}

type ItemViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemDetailView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int32) ([]*ItemDetailView, error)
}

type CommentViewRepo interface {
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
}

type itemQueriesImpl struct {
	items        ItemViewRepo
	comments     CommentViewRepo
	availability AvailabilityQueries
}

func NewItemQueries(items ItemViewRepo, comments CommentViewRepo, availability AvailabilityQueries) ItemQueries {
	return &itemQueriesImpl{items: items, comments: comments, availability: availability}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*ItemDetailView, error) {
	view, err := q.items.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	comments, err := q.comments.FindByItem(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load item comments")
	}
	view.Comments = comments

	if view.OwnerID == actor {
		availability, err := q.availability.ForItem(ctx, id)
		if err != nil {
			return nil, err
		}
		view.LastBooking = availability.Last
		view.NextBooking = availability.Next
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemDetailView, error) {
	views, err := q.items.FindByOwner(ctx, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list items")
	}
	if len(views) == 0 {
		return views, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		itemIDs = append(itemIDs, v.ID)
	}

	availability, err := q.availability.ForItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		entry := availability[v.ID]
		v.LastBooking = entry.Last
		v.NextBooking = entry.Next
	}
	return views, nil
}
