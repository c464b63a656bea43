package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform body of every API response: {success, message,
// data}. Data is null on every failure and on successes with no payload.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK writes a 200 success envelope with the given payload. Pass nil for
// endpoints that succeed with no payload.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: "",
		Data:    data,
	})
}

// Fail writes a failure envelope with the given status and message.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
	})
}
