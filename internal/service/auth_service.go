package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/model"
	"classdesk/internal/repository"
	"classdesk/internal/session"
	"classdesk/internal/shortid"
)

const bcryptCost = 10

// RegisterInput carries the raw registration fields. Validation happens
// inside Register, in the documented order, so the first failing check
// decides the message.
type RegisterInput struct {
	Role         string
	Email        string
	Code         string
	Name         string
	Password     string
	Confirmation string
}

// AuthService handles registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (userID, token string, err error)
	Login(ctx context.Context, email, password string) (userID, token string, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	sessions         session.Manager
	passwords        *PasswordValidator
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	sessions session.Manager,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		sessions:         sessions,
		passwords:        NewPasswordValidator(),
	}
}

// Register runs the registration sequence, short-circuiting on the first
// failing step: field presence, role, confirmation, password policy,
// verification code binding and expiry, then the transactional user and
// credential insert, and finally session creation.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, string, error) {
	if in.Role == "" || in.Email == "" || in.Code == "" || in.Name == "" || in.Password == "" {
		return "", "", apperrors.ErrMissingFields
	}
	if !model.ValidRole(in.Role) {
		return "", "", apperrors.ErrInvalidRole
	}
	if in.Password != in.Confirmation {
		return "", "", apperrors.ErrPasswordMismatch
	}
	if err := s.passwords.Validate(in.Password); err != nil {
		return "", "", err
	}

	verification, err := s.verificationRepo.FindByCode(ctx, in.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperrors.ErrWrongCode
		}
		return "", "", fmt.Errorf("look up verification code: %w", err)
	}
	if verification.Email != in.Email {
		return "", "", apperrors.ErrWrongCode
	}
	if verification.Expired(time.Now()) {
		return "", "", apperrors.ErrCodeExpired
	}

	userID, err := shortid.NewUserID()
	if err != nil {
		return "", "", fmt.Errorf("allocate user id: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:    userID,
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	cred := &model.Credential{
		UserID:       userID,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.CreateWithCredential(ctx, user, cred); err != nil {
		if repository.IsDuplicateKey(err) {
			return "", "", apperrors.ErrEmailTaken
		}
		return "", "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("create session: %w", err)
	}
	return userID, token, nil
}

// Login verifies the credentials and opens a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", apperrors.ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperrors.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("look up user: %w", err)
	}

	cred, err := s.userRepo.FindCredential(ctx, user.ID)
	if err != nil {
		return "", "", fmt.Errorf("look up credential: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", "", fmt.Errorf("create session: %w", err)
	}
	return user.ID, token, nil
}

// Logout destroys the session behind the token, if any.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
