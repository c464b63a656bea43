package repository

import (
	"context"

	"gorm.io/gorm"

	"classdesk/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	CreateWithCredential(ctx context.Context, user *model.User, cred *model.Credential) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindCredential(ctx context.Context, userID string) (*model.Credential, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithCredential inserts the user and its credential in one
// transaction so a failed credential insert never leaves an orphaned
// user row.
func (r *userRepository) CreateWithCredential(ctx context.Context, user *model.User, cred *model.Credential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(cred).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindCredential(ctx context.Context, userID string) (*model.Credential, error) {
	var cred model.Credential
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}
