//go:build e2e

package item_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/dto/response"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const itemsURL = "/items"

type ItemSuite struct {
	e2e.SharedSuite
}

func (s *ItemSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestItemSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ItemSuite))
}

func (s *ItemSuite) seedParties(t *testing.T) (ownerID, bookerID, itemID uuid.UUID) {
	t.Helper()
	ownerID = dbtest.CreateTestUser(t, s.DB, "owner", "owner@example.com")
	bookerID = dbtest.CreateTestUser(t, s.DB, "booker", "booker@example.com")
	itemID = dbtest.CreateTestItem(t, s.DB, ownerID, "cordless drill", true)
	return ownerID, bookerID, itemID
}

// =============================================================================
// TestGetItem
// =============================================================================

func (s *ItemSuite) TestGetItem() {
	s.Run("Normal case: owner sees last and next approved bookings", func() {
		t := s.T()
		ownerID, bookerID, itemID := s.seedParties(t)
		now := time.Now()

		last := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")
		next := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")
		// Non-approved bookings never surface here
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(72*time.Hour), now.Add(96*time.Hour), "WAITING")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ItemResponse
		httptest.DecodeJSON(t, w.Body.Bytes(), &actual)
		require.NotNil(t, actual.LastBooking)
		require.NotNil(t, actual.NextBooking)
		require.Equal(t, last, actual.LastBooking.ID)
		require.Equal(t, next, actual.NextBooking.ID)
		require.Equal(t, bookerID, actual.LastBooking.BookerID)
	})

	s.Run("Normal case: non-owner sees the item without booking data", func() {
		t := s.T()
		_, bookerID, itemID := s.seedParties(t)
		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, bookerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ItemResponse
		httptest.DecodeJSON(t, w.Body.Bytes(), &actual)
		require.Nil(t, actual.LastBooking)
		require.Nil(t, actual.NextBooking)
		require.Equal(t, "cordless drill", actual.Name)
	})

	s.Run("Error case: unknown item", func() {
		t := s.T()
		ownerID, _, _ := s.seedParties(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+uuid.New().String(), nil, ownerID.String())
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestListItems
// =============================================================================

func (s *ItemSuite) TestListItems() {
	s.Run("Normal case: owner listing carries next booking per item", func() {
		t := s.T()
		ownerID, bookerID, itemID := s.seedParties(t)
		idleItem := dbtest.CreateTestItem(t, s.DB, ownerID, "ladder", true)
		now := time.Now()
		next := dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(24*time.Hour), now.Add(48*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL, nil, ownerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var got []response.ItemResponse
		httptest.DecodeJSON(t, w.Body.Bytes(), &got)
		require.Len(t, got, 2)

		byID := map[uuid.UUID]response.ItemResponse{}
		for _, item := range got {
			byID[item.ID] = item
		}
		require.NotNil(t, byID[itemID].NextBooking)
		require.Equal(t, next, byID[itemID].NextBooking.ID)
		require.Nil(t, byID[idleItem].NextBooking)
	})
}

// =============================================================================
// TestAddComment
// =============================================================================

func (s *ItemSuite) TestAddComment() {
	body := map[string]any{"text": "worked perfectly"}

	s.Run("Normal case: booker comments after a completed approved booking", func() {
		t := s.T()
		_, bookerID, itemID := s.seedParties(t)
		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			itemsURL+"/"+itemID.String()+"/comment", body, bookerID.String())
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.CommentResponse
		httptest.DecodeJSON(t, w.Body.Bytes(), &actual)
		require.Equal(t, "worked perfectly", actual.Text)
		require.Equal(t, "booker", actual.AuthorName)

		// The comment shows up on the item detail afterwards
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			itemsURL+"/"+itemID.String(), nil, bookerID.String())
		require.Equal(t, http.StatusOK, dw.Code)
		require.Contains(t, dw.Body.String(), "worked perfectly")
	})

	s.Run("Error case: booking still in progress", func() {
		t := s.T()
		_, bookerID, itemID := s.seedParties(t)
		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-time.Hour), now.Add(24*time.Hour), "APPROVED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			itemsURL+"/"+itemID.String()+"/comment", body, bookerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: rejected booking grants no comment right", func() {
		t := s.T()
		_, bookerID, itemID := s.seedParties(t)
		now := time.Now()
		dbtest.CreateTestBooking(t, s.DB, itemID, bookerID,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), "REJECTED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			itemsURL+"/"+itemID.String()+"/comment", body, bookerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: never booked at all", func() {
		t := s.T()
		_, bookerID, itemID := s.seedParties(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			itemsURL+"/"+itemID.String()+"/comment", body, bookerID.String())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
