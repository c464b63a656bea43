package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"classdesk/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for a unique constraint
// violation.
const mysqlDuplicateEntry = 1062

// IsDuplicateKey reports whether err is a unique constraint violation.
// The short-code allocator relies on this to detect losing a race on a
// candidate code at insert time.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// InstructionRepository defines instruction persistence operations.
type InstructionRepository interface {
	Create(ctx context.Context, instruction *model.Instruction) error
	Exists(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*model.Instruction, error)
	UpdateText(ctx context.Context, id, text string) (int64, error)
	UpdateStatus(ctx context.Context, id string, status model.InstructionStatus) (int64, error)
}

type instructionRepository struct {
	db *gorm.DB
}

// NewInstructionRepository builds a GORM-backed repository.
func NewInstructionRepository(db *gorm.DB) InstructionRepository {
	return &instructionRepository{db: db}
}

func (r *instructionRepository) Create(ctx context.Context, instruction *model.Instruction) error {
	return r.db.WithContext(ctx).Create(instruction).Error
}

func (r *instructionRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Instruction{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *instructionRepository) FindByID(ctx context.Context, id string) (*model.Instruction, error) {
	var instruction model.Instruction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&instruction).Error; err != nil {
		return nil, err
	}
	return &instruction, nil
}

// UpdateText replaces the instruction text, returning the number of rows
// matched so callers can distinguish an update of a nonexistent id.
func (r *instructionRepository) UpdateText(ctx context.Context, id, text string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Instruction{}).
		Where("id = ?", id).
		Update("instruction", text)
	return res.RowsAffected, res.Error
}

// UpdateStatus moves the instruction to a new lifecycle state, returning
// the number of rows matched.
func (r *instructionRepository) UpdateStatus(ctx context.Context, id string, status model.InstructionStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Instruction{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
