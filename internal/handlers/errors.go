package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carelinehq/clinic-records/internal/authz"
	"github.com/carelinehq/clinic-records/internal/httperr"
)

// writeServiceError maps service-layer failures onto HTTP responses.
// Scoped lookups make "not visible" and "not existing" the same 404.
func writeServiceError(c *gin.Context, err error) {
	var denied authz.DeniedError
	if errors.As(err, &denied) {
		httperr.Forbidden(c, "forbidden", denied.Reason)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "resource not found")
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Code)
		return
	}

	httperr.Internal(c, "internal_error", "internal error")
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "invalid id")
		return 0, false
	}
	return uint(id), true
}
