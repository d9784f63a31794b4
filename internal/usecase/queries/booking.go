package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrUserNotFound    = errs.New("user not found")
)

// BookingConditions is a state filter resolved against a single "now"
// snapshot. Exactly one of the pointer fields is set for a non-ALL filter.
type BookingConditions struct {
	Status     *booking.Status
	EndBefore  *time.Time
	StartAfter *time.Time
	CurrentAt  *time.Time
}

// ConditionsFor translates a StateFilter into storage conditions. The same
// now must be used for every booking classified within one query.
func ConditionsFor(filter booking.StateFilter, now time.Time) BookingConditions {
	if status, ok := filter.StatusFilter(); ok {
		return BookingConditions{Status: &status}
	}
	switch filter {
	case booking.FilterCurrent:
		return BookingConditions{CurrentAt: &now}
	case booking.FilterPast:
		return BookingConditions{EndBefore: &now}
	case booking.FilterFuture:
		return BookingConditions{StartAfter: &now}
	default:
		return BookingConditions{}
	}
}

type BookingQueries interface {
	// GetByID is visible to the booker and the item owner only; anyone else
	// gets a not-found, never a forbidden.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem skips the access check for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actorID uuid.UUID, role booking.Role, filter booking.StateFilter, page Page) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByBooker(ctx context.Context, bookerID uuid.UUID, cond BookingConditions, limit, offset int32) ([]*BookingView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, cond BookingConditions, limit, offset int32) ([]*BookingView, error)
}

type UserExistenceRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingQueriesImpl struct {
	repo  BookingViewRepo
	users UserExistenceRepo
	clock clock.Clock
}

func NewBookingQueries(repo BookingViewRepo, users UserExistenceRepo, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, users: users, clock: clock}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.Booker.ID != actor && view.ItemOwnerID != actor {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.fetch(ctx, id)
}

func (q *bookingQueriesImpl) List(
	ctx context.Context,
	actorID uuid.UUID,
	role booking.Role,
	filter booking.StateFilter,
	page Page,
) ([]*BookingView, error) {
	exists, err := q.users.Exists(ctx, actorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check user existence")
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	cond := ConditionsFor(filter, q.clock.Now())

	var views []*BookingView
	switch role {
	case booking.RoleOwner:
		views, err = q.repo.FindByOwner(ctx, actorID, cond, page.Limit, page.Offset)
	default:
		views, err = q.repo.FindByBooker(ctx, actorID, cond, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return views, nil
}

func (q *bookingQueriesImpl) fetch(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}
