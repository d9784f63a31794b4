package commands

import (
	"context"
	"errors"
	"log/slog"

	"shareit/internal/domain/booking"
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
	ErrItemNotFound            = errs.New("item not found")
	ErrUserNotFound            = errs.New("user not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrItemNotAvailable        = errs.New("item not available")
	ErrAlreadyDecided          = errs.New("booking already decided")
	ErrInvalidDateRange        = errs.New("invalid date range")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindByIDForUpdate locks the row so concurrent decisions serialize.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	// MarkBooked refreshes the item's rental bookkeeping after an approval.
	MarkBooked(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, bookerID uuid.UUID) (*queries.BookingView, error)
	Decide(ctx context.Context, bookingID, ownerID uuid.UUID, approved bool) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, bookerID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	itemRepo       ItemRepository
	userRepo       UserRepository
	bookingQueries queries.BookingQueries
	db             shared.Beginner
	clock          clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	bookingQueries queries.BookingQueries,
	db shared.Beginner,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		itemRepo:       itemRepo,
		userRepo:       userRepo,
		bookingQueries: bookingQueries,
		db:             db,
		clock:          clock,
	}
}

func (u *bookingUseCaseImpl) Create(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	bookerID uuid.UUID,
) (*queries.BookingView, error) {
	item, err := u.itemRepo.FindByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := u.userRepo.FindByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	spec := booking.ItemSpec{ID: item.ID, OwnerID: item.OwnerID, Available: item.Available}
	entity, err := booking.NewBooking(spec, bookerID, req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrOwnItemBooking):
			// Owners see their own items as unbookable, not as forbidden
			return nil, ErrItemNotFound
		case errors.Is(err, booking.ErrItemUnavailable):
			return nil, ErrItemNotAvailable
		default:
			return nil, errs.Mark(err, ErrInvalidDateRange)
		}
	}

	id, err := shared.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (uuid.UUID, error) {
		return u.bookingRepo.Create(ctx, tx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.readBack(ctx, id)
}

func (u *bookingUseCaseImpl) Decide(
	ctx context.Context,
	bookingID, ownerID uuid.UUID,
	approved bool,
) (*queries.BookingView, error) {
	entity, err := shared.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (*booking.Booking, error) {
		b, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		item, err := u.itemRepo.FindByID(ctx, b.ItemID())
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// A booking is invisible to everyone but the item owner here
		if item.OwnerID != ownerID {
			return nil, ErrBookingNotFound
		}

		if err := b.Decide(approved); err != nil {
			return nil, errs.Mark(err, ErrAlreadyDecided)
		}
		if err := u.bookingRepo.UpdateStatus(ctx, tx, b.ID(), b.Status()); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	if entity.IsApproved() {
		// Bookkeeping only; the decision stands even if this write fails
		if err := u.itemRepo.MarkBooked(ctx, entity.ItemID()); err != nil {
			slog.Warn("failed to mark item as booked",
				"item_id", entity.ItemID(),
				"booking_id", entity.ID(),
				"error", err)
		}
	}

	return u.readBack(ctx, entity.ID())
}

func (u *bookingUseCaseImpl) Cancel(
	ctx context.Context,
	bookingID, bookerID uuid.UUID,
) (*queries.BookingView, error) {
	entity, err := shared.WithDefaultRetry(ctx, u.db, func(tx db.DBTX) (*booking.Booking, error) {
		b, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !b.BookedBy(bookerID) {
			return nil, ErrBookingNotFound
		}

		if err := b.Cancel(); err != nil {
			return nil, errs.Mark(err, ErrAlreadyDecided)
		}
		if err := u.bookingRepo.UpdateStatus(ctx, tx, b.ID(), b.Status()); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	return u.readBack(ctx, entity.ID())
}

// Read-after-write: return the complete view from the read store
func (u *bookingUseCaseImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := u.bookingQueries.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
