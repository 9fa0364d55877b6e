package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pillar-calculator/internal/api/models"
	"github.com/rpgo/pillar-calculator/internal/domain"
	"github.com/rpgo/pillar-calculator/internal/output"
)

// statusFor maps an error to its HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case domain.IsKind(err, domain.KindInvalidArgument):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case domain.IsKind(err, domain.KindShapeMismatch):
		return http.StatusUnprocessableEntity, "SHAPE_MISMATCH"
	case errors.Is(err, output.ErrUnsupportedFormat):
		return http.StatusNotFound, "UNSUPPORTED_FORMAT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)
	_ = c.Error(err)
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func respondBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
