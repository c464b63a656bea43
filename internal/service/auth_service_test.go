package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/model"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Role:         model.RoleStudent,
		Email:        "alice@example.com",
		Code:         "123456",
		Name:         "Alice",
		Password:     "Secret12",
		Confirmation: "Secret12",
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *RegisterInput)
		wantErr error
	}{
		{
			name:    "missing email",
			mutate:  func(in *RegisterInput) { in.Email = "" },
			wantErr: apperrors.ErrMissingFields,
		},
		{
			name:    "missing name",
			mutate:  func(in *RegisterInput) { in.Name = "" },
			wantErr: apperrors.ErrMissingFields,
		},
		{
			name:    "unknown role",
			mutate:  func(in *RegisterInput) { in.Role = "admin" },
			wantErr: apperrors.ErrInvalidRole,
		},
		{
			name:    "confirmation mismatch",
			mutate:  func(in *RegisterInput) { in.Confirmation = "Secret13" },
			wantErr: apperrors.ErrPasswordMismatch,
		},
		{
			name: "weak password",
			mutate: func(in *RegisterInput) {
				in.Password = "lowercase1"
				in.Confirmation = "lowercase1"
			},
			wantErr: apperrors.ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(new(MockUserRepository), new(MockVerificationRepository), new(MockSessionManager))

			in := validRegisterInput()
			tt.mutate(&in)

			_, _, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_WrongCode(t *testing.T) {
	verificationRepo := new(MockVerificationRepository)
	verificationRepo.On("FindByCode", mock.Anything, "123456").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(new(MockUserRepository), verificationRepo, new(MockSessionManager))

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, apperrors.ErrWrongCode)
	verificationRepo.AssertExpectations(t)
}

func TestAuthService_Register_CodeBoundToOtherEmail(t *testing.T) {
	verificationRepo := new(MockVerificationRepository)
	verificationRepo.On("FindByCode", mock.Anything, "123456").Return(&model.VerificationCode{
		Code:   "123456",
		Email:  "bob@example.com",
		Expire: time.Now().Add(time.Minute).Unix(),
	}, nil)

	svc := NewAuthService(new(MockUserRepository), verificationRepo, new(MockSessionManager))

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, apperrors.ErrWrongCode)
}

func TestAuthService_Register_ExpiredCode(t *testing.T) {
	verificationRepo := new(MockVerificationRepository)
	verificationRepo.On("FindByCode", mock.Anything, "123456").Return(&model.VerificationCode{
		Code:   "123456",
		Email:  "alice@example.com",
		Expire: time.Now().Add(-time.Minute).Unix(),
	}, nil)

	svc := NewAuthService(new(MockUserRepository), verificationRepo, new(MockSessionManager))

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, apperrors.ErrCodeExpired)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	verificationRepo := new(MockVerificationRepository)
	verificationRepo.On("FindByCode", mock.Anything, "123456").Return(&model.VerificationCode{
		Code:   "123456",
		Email:  "alice@example.com",
		Expire: time.Now().Add(time.Minute).Unix(),
	}, nil)

	userRepo := new(MockUserRepository)
	userRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).
		Return(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	svc := NewAuthService(userRepo, verificationRepo, new(MockSessionManager))

	_, _, err := svc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_Success(t *testing.T) {
	verificationRepo := new(MockVerificationRepository)
	verificationRepo.On("FindByCode", mock.Anything, "123456").Return(&model.VerificationCode{
		Code:   "123456",
		Email:  "alice@example.com",
		Expire: time.Now().Add(time.Minute).Unix(),
	}, nil)

	var created *model.User
	userRepo := new(MockUserRepository)
	userRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
			cred := args.Get(2).(*model.Credential)
			assert.Equal(t, created.ID, cred.UserID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte("Secret12")))
		}).
		Return(nil)

	sessions := new(MockSessionManager)
	sessions.On("Create", mock.Anything, mock.Anything).Return("token-1", nil)

	svc := NewAuthService(userRepo, verificationRepo, sessions)

	userID, token, err := svc.Register(context.Background(), validRegisterInput())
	assert.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, created.ID, userID)
	assert.True(t, len(userID) == 15 && userID[:5] == "user_")
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, model.RoleStudent, created.Role)
	userRepo.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret12"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
		ID:    "user_abc123def0",
		Email: "alice@example.com",
	}, nil)
	userRepo.On("FindCredential", mock.Anything, "user_abc123def0").Return(&model.Credential{
		UserID:       "user_abc123def0",
		PasswordHash: string(hash),
	}, nil)

	sessions := new(MockSessionManager)
	sessions.On("Create", mock.Anything, "user_abc123def0").Return("token-2", nil)

	svc := NewAuthService(userRepo, new(MockVerificationRepository), sessions)

	userID, token, err := svc.Login(context.Background(), "alice@example.com", "Secret12")
	assert.NoError(t, err)
	assert.Equal(t, "user_abc123def0", userID)
	assert.Equal(t, "token-2", token)
	sessions.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(userRepo, new(MockVerificationRepository), new(MockSessionManager))

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "Secret12")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret12"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: "user_abc123def0"}, nil)
	userRepo.On("FindCredential", mock.Anything, "user_abc123def0").Return(&model.Credential{
		UserID:       "user_abc123def0",
		PasswordHash: string(hash),
	}, nil)

	svc := NewAuthService(userRepo, new(MockVerificationRepository), new(MockSessionManager))

	_, _, err = svc.Login(context.Background(), "alice@example.com", "Wrong123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	sessions := new(MockSessionManager)
	sessions.On("Destroy", mock.Anything, "token-3").Return(nil)

	svc := NewAuthService(new(MockUserRepository), new(MockVerificationRepository), sessions)

	assert.NoError(t, svc.Logout(context.Background(), "token-3"))
	sessions.AssertExpectations(t)
}
