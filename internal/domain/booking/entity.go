package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrOwnItemBooking is deliberately surfaced to callers as "not found":
	// an owner asking to book their own item must not learn anything a
	// stranger would not.
	ErrOwnItemBooking  = errors.New("cannot book own item")
	ErrItemUnavailable = errors.New("item not available for booking")
	ErrAlreadyDecided  = errors.New("booking already decided")
)

// ItemSpec is the slice of an item the state machine needs for its guards.
type ItemSpec struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available bool
}

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	dates     DateRange
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking runs the creation guards and yields a WAITING booking.
// Guard order is owner, availability, then dates: the non-leaking owner
// guard must fire before any date error can reach the caller. No overlap
// check against other bookings of the item is performed here.
func NewBooking(item ItemSpec, bookerID uuid.UUID, start, end time.Time) (*Booking, error) {
	if bookerID == item.OwnerID {
		return nil, ErrOwnItemBooking
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}
	dates, err := NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:       uuid.New(),
		itemID:   item.ID,
		bookerID: bookerID,
		dates:    dates,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(
	id, itemID, bookerID uuid.UUID,
	dates DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		dates:     dates,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Any booking that
// has already left WAITING cannot be re-decided.
func (b *Booking) Decide(approved bool) error {
	if b.status.IsTerminal() {
		return ErrAlreadyDecided
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

// Cancel withdraws a WAITING booking. Decided bookings stay decided.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrAlreadyDecided
	}
	b.status = StatusCanceled
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ItemID() uuid.UUID    { return b.itemID }
func (b *Booking) BookerID() uuid.UUID  { return b.bookerID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsWaiting() bool {
	return b.status == StatusWaiting
}

func (b *Booking) IsApproved() bool {
	return b.status == StatusApproved
}

// BookedBy reports whether userID is the booker.
func (b *Booking) BookedBy(userID uuid.UUID) bool {
	return b.bookerID == userID
}
