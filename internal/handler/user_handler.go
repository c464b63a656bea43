package handler

import (
	"github.com/labstack/echo/v4"

	"classdesk/internal/response"
	"classdesk/internal/service"
	"classdesk/internal/session"
)

// UserHandler handles the current-user endpoint.
type UserHandler struct {
	userService service.UserService
	cookies     session.CookieConfig
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, cookies session.CookieConfig) *UserHandler {
	return &UserHandler{userService: userService, cookies: cookies}
}

// ProfileResponse is the current user's public profile.
type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Get godoc
// @Summary Get the user behind the session cookie
// @Tags user
// @Produce json
// @Success 200 {object} response.Envelope{data=ProfileResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /user [get]
func (h *UserHandler) Get(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(h.cookies.Name); err == nil {
		token = cookie.Value
	}

	user, err := h.userService.CurrentUser(c.Request().Context(), token)
	if err != nil {
		return fail(c, err)
	}

	// Re-issue the cookie so the expiry window slides with activity.
	c.SetCookie(session.Cookie(token, h.cookies))
	return response.OK(c, ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}
