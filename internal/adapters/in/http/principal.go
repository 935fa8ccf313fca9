package http

import (
	"net/http"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	principalKey = "principal"
)

// RequirePrincipal reads the caller's identity from the headers set by the
// identity provider in front of the service. Requests without a valid pair
// are rejected with 401.
func RequirePrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed "+HeaderUserID+" header")
		}

		role, err := kernel.ParseRole(c.Request().Header.Get(HeaderUserRole))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or unknown "+HeaderUserRole+" header")
		}

		principal, err := kernel.NewPrincipal(id, role)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

func principalFrom(c echo.Context) kernel.Principal {
	p, _ := c.Get(principalKey).(kernel.Principal)
	return p
}
