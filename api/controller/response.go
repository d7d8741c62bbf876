package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ninelens/reviewrec/domain"
)

func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}, total int) {
	ctx.JSON(http.StatusOK, gin.H{
		key:     data,
		"total": total,
	})
}

// DomainErrorResponse maps the core's typed errors onto HTTP statuses.
// Preprocessing failures are unprocessable input; unknown query targets are
// not-found; anything else is a server fault.
func DomainErrorResponse(ctx *gin.Context, err error) {
	var schemaErr *domain.SchemaError
	var insufficientErr *domain.InsufficientDataError
	var unknownUserErr *domain.UnknownUserError
	var unknownProductErr *domain.UnknownProductError

	switch {
	case errors.As(err, &schemaErr):
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "SCHEMA_ERROR", schemaErr.Error())
	case errors.As(err, &insufficientErr):
		ErrorResponse(ctx, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA", insufficientErr.Error())
	case errors.As(err, &unknownUserErr):
		ErrorResponse(ctx, http.StatusNotFound, "UNKNOWN_USER", unknownUserErr.Error())
	case errors.As(err, &unknownProductErr):
		ErrorResponse(ctx, http.StatusNotFound, "UNKNOWN_PRODUCT", unknownProductErr.Error())
	default:
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
	}
}
