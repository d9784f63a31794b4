package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingRefResponse struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Available   bool                `json:"available"`
	LastBooking *BookingRefResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingRefResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse   `json:"comments"`
}

func FromItemDetailView(rm *queries.ItemDetailView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, rm)
	if resp.Comments == nil {
		resp.Comments = []CommentResponse{}
	}
	return &resp
}

func FromItemDetailViews(rms []*queries.ItemDetailView) []*ItemResponse {
	resps := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromItemDetailView(rm)
	}
	return resps
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
