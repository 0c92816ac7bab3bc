package api

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"taskboard-service/internal/auth"
	"taskboard-service/internal/entity"
)

const (
	userContextKey  = "user"
	guardErrorKey   = "guard_error"
	credentialsFail = "Could not validate credentials"
)

// RequireUser resolves the bearer token through guard and stores the user on
// the context. Requests without a valid token get a 401 challenge.
func RequireUser(guard *auth.Guard) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: userContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			user, err := guard.Resolve(c.Request().Context(), token)
			if err != nil {
				if !errors.Is(err, auth.ErrUnauthorized) {
					c.Set(guardErrorKey, err)
				}
				return nil, err
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// A store failure while resolving is a server error, not a bad token.
			if guardErr, ok := c.Get(guardErrorKey).(error); ok {
				return writeError(c, guardErr)
			}
			return unauthorized(c, credentialsFail)
		},
	})
}

// currentUser returns the user set by RequireUser.
func currentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)
	return user
}
