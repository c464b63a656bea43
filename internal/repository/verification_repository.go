package repository

import (
	"context"

	"gorm.io/gorm"

	"classdesk/internal/model"
)

// VerificationRepository defines verification code persistence operations.
type VerificationRepository interface {
	Create(ctx context.Context, code *model.VerificationCode) error
	FindByCode(ctx context.Context, code string) (*model.VerificationCode, error)
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository builds a GORM-backed repository.
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, code *model.VerificationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *verificationRepository) FindByCode(ctx context.Context, code string) (*model.VerificationCode, error) {
	var v model.VerificationCode
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
