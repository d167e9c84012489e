package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperr "github.com/yungbote/gradadmin-backend/internal/pkg/errors"
)

// RespondServiceError maps service error kinds onto HTTP statuses:
// validation 422, authorization 403, missing resource 404, missing reference
// data 503 (retryable once the rate table is fixed), anything else 500.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		RespondError(c, http.StatusUnprocessableEntity, "validation_failed", err)
	case errors.Is(err, apperr.ErrAuthorization):
		RespondError(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperr.ErrConfiguration):
		RespondError(c, http.StatusServiceUnavailable, "rates_not_configured", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
