package http

import (
	"errors"
	"net/http"

	"travelorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto the API's status codes:
// missing objects are 404, policy denials 403, and every validation or
// business-rule failure 422. Anything unrecognized is a 500 with a
// generic message so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrAccessDenied):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrBusinessRuleViolated):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func writeUnauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
