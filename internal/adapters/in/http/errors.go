package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// problem translates application errors into the uniform error body.
// Unrecognized errors are reported as 500 without leaking their text.
func problem(ctx echo.Context, err error) error {
	var invalidItems *commands.InvalidItemsError
	switch {
	case errors.As(err, &invalidItems):
		return respondError(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, err)
	case errors.Is(err, services.ErrActorNotAllowed):
		return respondError(ctx, http.StatusForbidden, err)
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return respondError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderLinesAreRequired):
		return respondError(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func respondError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
