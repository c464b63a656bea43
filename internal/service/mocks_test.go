package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"classdesk/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithCredential(ctx context.Context, user *model.User, cred *model.Credential) error {
	args := m.Called(ctx, user, cred)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindCredential(ctx context.Context, userID string) (*model.Credential, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Credential), args.Error(1)
}

// MockVerificationRepository is a mock implementation of repository.VerificationRepository.
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, code *model.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockVerificationRepository) FindByCode(ctx context.Context, code string) (*model.VerificationCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VerificationCode), args.Error(1)
}

// MockInstructionRepository is a mock implementation of repository.InstructionRepository.
type MockInstructionRepository struct {
	mock.Mock
}

func (m *MockInstructionRepository) Create(ctx context.Context, instruction *model.Instruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

func (m *MockInstructionRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInstructionRepository) FindByID(ctx context.Context, id string) (*model.Instruction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Instruction), args.Error(1)
}

func (m *MockInstructionRepository) UpdateText(ctx context.Context, id, text string) (int64, error) {
	args := m.Called(ctx, id, text)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInstructionRepository) UpdateStatus(ctx context.Context, id string, status model.InstructionStatus) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockSessionManager is a mock implementation of session.Manager.
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Validate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Renew(ctx context.Context, token, userID string) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}

func (m *MockSessionManager) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
