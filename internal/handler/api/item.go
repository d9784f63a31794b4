package api

import (
	"errors"
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	comments commands.CommentCommands
	q        queries.ItemQueries
}

func NewItemHandler(comments commands.CommentCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{comments: comments, q: q}
}

// @Summary Get item
// @Description Get an item with its comments; last/next booking data is owner-only
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List own items
// @Description List the caller's items with last/next booking data attached
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param from query int false "Result offset"
// @Param size query int false "Page size"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	page, err := parsePage(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return
	}

	views, err := h.q.ListByOwner(c.Request.Context(), userID, page)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemDetailViews(views))
}

// @Summary Add comment
// @Description Comment on an item after a completed approved booking
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Requesting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment request"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.comments.AddComment(c.Request.Context(), req, id, userID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommentView(view))
}

func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, queries.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No completed booking to comment on", nil)
	case errors.Is(err, commands.ErrInvalidComment):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid comment", nil)
	case errors.Is(err, queries.ErrInvalidPage):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
