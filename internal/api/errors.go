package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"taskboard-service/internal/auth"
	"taskboard-service/internal/entity"
	"taskboard-service/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

// unauthorized answers 401 with a bearer challenge.
func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return errorJSON(c, http.StatusUnauthorized, msg)
}

// writeError maps domain errors to status codes. Unknown errors become 500
// and are logged; their text is not sent to the client.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrUnauthorized), errors.Is(err, auth.ErrInvalidToken):
		return unauthorized(c, credentialsFail)
	case errors.Is(err, service.ErrInvalidCredentials):
		return unauthorized(c, service.ErrInvalidCredentials.Error())
	case errors.Is(err, entity.ErrInvalidID):
		return errorJSON(c, http.StatusBadRequest, entity.ErrInvalidID.Error())
	case errors.Is(err, entity.ErrInvalidStatus),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooLong):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrBoardNotFound), errors.Is(err, service.ErrTodoNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return errorJSON(c, http.StatusForbidden, err.Error())
	}

	logger.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("Unhandled error")
	return errorJSON(c, http.StatusInternalServerError, "internal server error")
}

// httpErrorHandler renders echo's own errors (unknown route, bad method,
// body too large) in the same shape as handler errors.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		if err := errorJSON(c, he.Code, msg); err != nil {
			logger.Error().Err(err).Msg("Error writing response")
		}
		return
	}
	if err := writeError(c, err); err != nil {
		logger.Error().Err(err).Msg("Error writing response")
	}
}
