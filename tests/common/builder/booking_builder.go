//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles booking views and request bodies with sane
// defaults so tests only state what they care about.
type BookingBuilder struct {
	id       uuid.UUID
	itemID   uuid.UUID
	itemName string
	ownerID  uuid.UUID
	bookerID uuid.UUID
	booker   string
	start    time.Time
	end      time.Time
	status   booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		id:       uuid.New(),
		itemID:   uuid.New(),
		itemName: "cordless drill",
		ownerID:  uuid.New(),
		bookerID: uuid.New(),
		booker:   "alice",
		start:    start,
		end:      start.Add(48 * time.Hour),
		status:   booking.StatusWaiting,
	}
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) WithBooker(id uuid.UUID) *BookingBuilder {
	b.bookerID = id
	return b
}

func (b *BookingBuilder) WithItemOwner(id uuid.UUID) *BookingBuilder {
	b.ownerID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.id,
		Start:       b.start,
		End:         b.end,
		Status:      b.status.String(),
		Booker:      queries.UserRef{ID: b.bookerID, Name: b.booker},
		Item:        queries.ItemRef{ID: b.itemID, Name: b.itemName},
		ItemOwnerID: b.ownerID,
	}
}

func (b *BookingBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"itemId": b.itemID.String(),
		"start":  b.start.Format(time.RFC3339),
		"end":    b.end.Format(time.RFC3339),
	}
}
