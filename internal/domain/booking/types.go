package booking

import (
	"errors"
	"strings"
)

// Status is the persisted lifecycle state of a booking. A booking is created
// WAITING and leaves it exactly once; APPROVED, REJECTED and CANCELED are all
// terminal.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s != StatusWaiting
}

// StateFilter is a query-time classification of bookings. The time-shaped
// filters (CURRENT/PAST/FUTURE) are derived from the date range relative to a
// single "now" snapshot; the status-shaped ones match Status directly. One
// filter picks exactly one of the two axes.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterApproved StateFilter = "APPROVED"
	FilterRejected StateFilter = "REJECTED"
	FilterCanceled StateFilter = "CANCELED"
)

var ErrUnknownStateFilter = errors.New("unknown state filter")

// ParseStateFilter accepts filter tokens case-insensitively. An empty token
// means ALL.
func ParseStateFilter(s string) (StateFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch StateFilter(strings.ToUpper(s)) {
	case FilterAll:
		return FilterAll, nil
	case FilterCurrent:
		return FilterCurrent, nil
	case FilterPast:
		return FilterPast, nil
	case FilterFuture:
		return FilterFuture, nil
	case FilterWaiting:
		return FilterWaiting, nil
	case FilterApproved:
		return FilterApproved, nil
	case FilterRejected:
		return FilterRejected, nil
	case FilterCanceled:
		return FilterCanceled, nil
	default:
		return "", ErrUnknownStateFilter
	}
}

// StatusFilter reports whether the filter matches on Status, and which one.
func (f StateFilter) StatusFilter() (Status, bool) {
	switch f {
	case FilterWaiting, FilterApproved, FilterRejected, FilterCanceled:
		return Status(f), true
	default:
		return "", false
	}
}

// Role selects the perspective of a booking listing: the requesting user as
// the booker of the bookings, or as the owner of the booked items.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)
