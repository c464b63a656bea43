package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/model"
)

// MockMailer is a mock implementation of mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func TestVerificationService_Issue(t *testing.T) {
	t.Run("stores and mails a digit code", func(t *testing.T) {
		now := time.Now()

		repo := new(MockVerificationRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(v *model.VerificationCode) bool {
			if len(v.Code) != verifyCodeLength || v.Email != "alice@example.com" {
				return false
			}
			for _, r := range v.Code {
				if r < '0' || r > '9' {
					return false
				}
			}
			return v.Expire >= now.Add(10*time.Minute).Unix()
		})).Return(nil).Once()

		mailer := new(MockMailer)
		mailer.On("SendVerificationCode", mock.Anything, "alice@example.com", mock.Anything).Return(nil).Once()

		svc := NewVerificationService(repo, nil, mailer, 10*time.Minute, time.Minute)

		assert.NoError(t, svc.Issue(context.Background(), "alice@example.com"))
		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("rerolls a colliding code", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		mailer := new(MockMailer)
		mailer.On("SendVerificationCode", mock.Anything, "alice@example.com", mock.Anything).Return(nil).Once()

		svc := NewVerificationService(repo, nil, mailer, 10*time.Minute, time.Minute)

		assert.NoError(t, svc.Issue(context.Background(), "alice@example.com"))
		repo.AssertExpectations(t)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		svc := NewVerificationService(repo, nil, new(MockMailer), 10*time.Minute, time.Minute)

		err := svc.Issue(context.Background(), "alice@example.com")
		assert.ErrorIs(t, err, apperrors.ErrCodeSpaceExhausted)
		repo.AssertNumberOfCalls(t, "Create", maxVerifyCodeAttempts)
	})
}
