package http

import (
	"errors"

	"ordering/internal/core/domain/model/actor"
	"ordering/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers. Real authentication sits in front of this service; the
// headers are the thinnest possible stand-in for an authenticated identity.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errMissingIdentity = errors.New("identity headers are required")

// actorFromRequest builds the acting identity from the request headers.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return actor.Actor{}, errMissingIdentity
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(userID, role)
}
