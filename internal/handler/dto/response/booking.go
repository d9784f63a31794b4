package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingUserResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingItemResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingResponse struct {
	ID     uuid.UUID           `json:"id"`
	Start  time.Time           `json:"start"`
	End    time.Time           `json:"end"`
	Status string              `json:"status"`
	Booker BookingUserResponse `json:"booker"`
	Item   BookingItemResponse `json:"item"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromBookingView(rm)
	}
	return resps
}
