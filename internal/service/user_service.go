package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"classdesk/internal/cache"
	apperrors "classdesk/internal/errors"
	"classdesk/internal/model"
	"classdesk/internal/repository"
	"classdesk/internal/session"
)

const userCacheTTL = 5 * time.Minute

// UserService resolves the user behind a session token.
type UserService interface {
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

type userService struct {
	repo     repository.UserRepository
	sessions session.Manager
	cache    *cache.Client
}

// NewUserService builds a UserService with repository, sessions, and cache.
func NewUserService(repo repository.UserRepository, sessions session.Manager, cacheClient *cache.Client) UserService {
	return &userService{repo: repo, sessions: sessions, cache: cacheClient}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// CurrentUser validates the session token, renews it to slide the expiry
// window, and returns the user's profile. A valid session whose user row
// has disappeared is its own error.
func (s *userService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserGone
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.sessions.Renew(ctx, token, userID); err != nil {
		return nil, fmt.Errorf("renew session: %w", err)
	}
	return user, nil
}

func (s *userService) lookupUser(ctx context.Context, id string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}
