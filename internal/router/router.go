package router

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"classdesk/internal/handler"
	"classdesk/internal/response"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	instructionHandler *handler.InstructionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Every error that escapes a handler, including the router's own 404
	// and 405, is rendered in the uniform envelope.
	e.HTTPErrorHandler = NewEnvelopeErrorHandler()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/verify", authHandler.Verify)

	// Session-cookie routes
	api.GET("/user", userHandler.Get)

	// Instruction routes
	api.GET("/instruction", instructionHandler.Get)
	api.POST("/instruction", instructionHandler.Post)
}

// NewEnvelopeErrorHandler builds an echo error handler that renders the
// {success, message, data} envelope. Unexpected errors are logged and
// masked with a generic message.
func NewEnvelopeErrorHandler() echo.HTTPErrorHandler {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "router").Logger()

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error."

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			switch status {
			case http.StatusMethodNotAllowed:
				message = "Not allowed."
			case http.StatusNotFound:
				message = "Not found."
			default:
				if m, ok := httpErr.Message.(string); ok {
					message = m
				}
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().
				Err(err).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
			message = "Internal server error."
		}

		if writeErr := response.Fail(c, status, message); writeErr != nil {
			logger.Error().Err(writeErr).Msg("write error response")
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
