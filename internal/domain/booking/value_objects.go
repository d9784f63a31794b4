package booking

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid booking date range")

// DateRange is the interval a booking claims. Both bounds must be set and
// start must be strictly before end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDateRange
	}
	if end.Before(start) || start.Equal(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// CompletedBy reports whether the whole interval lies before t.
func (r DateRange) CompletedBy(t time.Time) bool {
	return r.end.Before(t)
}

// StartsAfter reports whether the interval has not begun at t.
func (r DateRange) StartsAfter(t time.Time) bool {
	return r.start.After(t)
}
