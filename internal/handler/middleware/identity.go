package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderUserID carries the caller's identity. Authentication happens at the
// gateway; this service trusts the header and only checks its shape.
const HeaderUserID = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

var (
	errMissingUserHeader = errs.New("missing user header")
	errInvalidUserHeader = errs.New("invalid user header")
)

func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserHeader, "X-Sharer-User-Id header required", nil)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidUserHeader), "Invalid X-Sharer-User-Id header", nil)
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
