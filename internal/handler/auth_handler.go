package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/response"
	"classdesk/internal/service"
	"classdesk/internal/session"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService         service.AuthService
	verificationService service.VerificationService
	cookies             session.CookieConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(
	authService service.AuthService,
	verificationService service.VerificationService,
	cookies session.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		verificationService: verificationService,
		cookies:             cookies,
	}
}

// RegisterRequest represents a user registration request. Field presence
// and ordering of the checks are enforced in the service, so no validate
// tags here.
type RegisterRequest struct {
	Role         string `json:"role"`
	Email        string `json:"email"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest represents a verification code request.
type VerifyRequest struct {
	Email string `query:"email" validate:"required,email"`
}

// Register godoc
// @Summary Register a new user with a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 405 {object} response.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}

	_, token, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Role:         req.Role,
		Email:        req.Email,
		Code:         req.Code,
		Name:         req.Name,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		return fail(c, err)
	}

	c.SetCookie(session.Cookie(token, h.cookies))
	return response.OK(c, nil)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}

	_, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	c.SetCookie(session.Cookie(token, h.cookies))
	return response.OK(c, nil)
}

// Logout godoc
// @Summary Logout and destroy the session
// @Tags auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(h.cookies.Name); err == nil {
		token = cookie.Value
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return fail(c, err)
	}

	c.SetCookie(session.ExpiredCookie(h.cookies))
	return response.OK(c, nil)
}

// Verify godoc
// @Summary Issue a verification code for an email address
// @Tags auth
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, apperrors.ErrMissingFields.Error())
	}

	if err := h.verificationService.Issue(c.Request().Context(), req.Email); err != nil {
		return fail(c, err)
	}
	return response.OK(c, nil)
}
