package http

import (
	"errors"
	"net/http"

	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps the core error taxonomy onto HTTP statuses and writes the
// JSON error body. InvalidOwner is structural and deliberately surfaces as a
// 500: it means a record could not be attributed to an existing account, not
// that the caller did anything wrong.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		return ctx.JSON(status, Error{
			Code:    status,
			Message: "internal error",
		})
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAccessForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
