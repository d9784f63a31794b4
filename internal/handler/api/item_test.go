//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ItemHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockComments *commandsmock.MockCommentCommands
	mockQueries  *queriesmock.MockItemQueries
	handler      *api.ItemHandler
	userID       uuid.UUID
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockComments = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	s.handler = api.NewItemHandler(s.mockComments, s.mockQueries)
	s.userID = uuid.New()

	group := s.router.Group("/items")
	group.Use(middleware.RequireIdentity())
	group.GET("", s.handler.List)
	group.GET("/:id", s.handler.Get)
	group.POST("/:id/comment", s.handler.AddComment)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (s *ItemHandlerTestSuite) TestGet() {
	itemID := uuid.New()
	view := &queries.ItemDetailView{ID: itemID, Name: "ladder", Available: true}

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, itemID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+itemID.String(), nil, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "ladder")
	})

	s.Run("missing", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID, itemID).
			Return(nil, queries.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+itemID.String(), nil, s.userID.String())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/xyz", nil, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ItemHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().
		ListByOwner(gomock.Any(), s.userID, gomock.Any()).
		Return([]*queries.ItemDetailView{{ID: uuid.New(), Name: "saw"}}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, s.userID.String())
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "saw")
}

func (s *ItemHandlerTestSuite) TestAddComment() {
	itemID := uuid.New()
	body := map[string]any{"text": "worked perfectly"}
	view := &queries.CommentView{ID: uuid.New(), Text: "worked perfectly", AuthorName: "alice", Created: time.Now()}

	s.Run("created", func() {
		s.mockComments.EXPECT().
			AddComment(gomock.Any(), gomock.Any(), itemID, s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment", body, s.userID.String())
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "worked perfectly")
	})

	s.Run("no completed booking", func() {
		s.mockComments.EXPECT().
			AddComment(gomock.Any(), gomock.Any(), itemID, s.userID).
			Return(nil, commands.ErrCommentNotAllowed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment", body, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("empty text", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/comment", map[string]any{"text": ""}, s.userID.String())
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
