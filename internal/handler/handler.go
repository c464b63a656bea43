package handler

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/response"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "http").Logger()

// fail maps a domain error onto the response envelope. Internal errors
// are logged with the request id and masked with a generic message so
// the raw error never reaches the client.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("path", c.Request().URL.Path).
			Msg("request failed")
	}
	return response.Fail(c, httpErr.StatusCode, httpErr.Message)
}
