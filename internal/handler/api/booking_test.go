//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	group := s.router.Group("/bookings")
	group.Use(middleware.RequireIdentity())
	group.POST("", s.handler.Create)
	group.GET("", s.handler.List)
	group.GET("/owner", s.handler.ListOwner)
	group.GET("/:id", s.handler.Get)
	group.PATCH("/:id", s.handler.Decide)
	group.PATCH("/:id/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// Identity header
// ================================================================================

func (s *BookingHandlerTestSuite) TestIdentityHeaderRequired() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestIdentityHeaderMustBeUUID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "not-a-uuid")
	s.Equal(http.StatusBadRequest, w.Code)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder().WithBooker(s.userID)
	body := b.BuildCreateRequestBody()
	view := b.BuildView()

	s.Run("created", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, s.userID.String())
		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), view.ID.String())
		s.Contains(w.Body.String(), "WAITING")
	})

	s.Run("unknown item", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, s.userID.String())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("item not available", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrItemNotAvailable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid date range", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrInvalidDateRange)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed body", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", map[string]any{"itemId": "nope"}, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	view := builder.NewBookingBuilder().WithItemOwner(s.userID).BuildView()
	path := "/bookings/" + view.ID.String()

	s.Run("approved", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), view.ID, s.userID, true).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path+"?approved=true", nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejected", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), view.ID, s.userID, false).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path+"?approved=false", nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("approved param malformed", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path+"?approved=maybe", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("already decided", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), view.ID, s.userID, true).
			Return(nil, commands.ErrAlreadyDecided)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path+"?approved=true", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("not the owner", func() {
		s.mockCommands.EXPECT().
			Decide(gomock.Any(), view.ID, s.userID, true).
			Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path+"?approved=true", nil, s.userID.String())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed booking id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/abc?approved=true", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().WithBooker(s.userID).BuildView()
	path := "/bookings/" + view.ID.String() + "/cancel"

	s.Run("canceled", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), view.ID, s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("already decided", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), view.ID, s.userID).
			Return(nil, commands.ErrAlreadyDecided)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path, nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithBooker(s.userID).BuildView()
	path := "/bookings/" + view.ID.String()

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), view.Item.Name)
	})

	s.Run("hidden from strangers", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, view.ID).
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.userID.String())
		s.Equal(http.StatusNotFound, w.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithBooker(s.userID).BuildView(),
	}

	s.Run("booker listing with filter", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=past", nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("owner listing", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("unknown state token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=UNSUPPORTED", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "Unknown state")
	})

	s.Run("negative offset", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown user", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.userID.String())
		s.Equal(http.StatusNotFound, w.Code)
	})
}
