package queries

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPage = errs.New("invalid page parameters")

// Read models (DTO for read side)

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker UserRef   `json:"booker"`
	Item   ItemRef   `json:"item"`

	// ItemOwnerID supports access checks without a second round trip.
	ItemOwnerID uuid.UUID `json:"-"`
}

// BookingRef is the compact booking shape embedded in item views for the
// last/next aggregation.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	LastBooking *BookingRef   `json:"lastBooking,omitempty"`
	NextBooking *BookingRef   `json:"nextBooking,omitempty"`
	Comments    []CommentView `json:"comments,omitempty"`

	OwnerID uuid.UUID `json:"-"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Page struct {
	Limit  int32
	Offset int32
}

// NewPage validates offset paging parameters. A zero size falls back to the
// default; oversized requests are clamped rather than rejected.
func NewPage(from, size int32) (Page, error) {
	if from < 0 || size < 0 {
		return Page{}, ErrInvalidPage
	}
	if size == 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return Page{Limit: size, Offset: from}, nil
}
