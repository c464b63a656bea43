package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "classdesk/internal/errors"
	"classdesk/internal/model"
	"classdesk/internal/repository"
	"classdesk/internal/shortid"
)

// maxAllocateAttempts bounds the short-code retry loop. Collisions are
// vanishingly rare at this id-space size, so hitting the ceiling means
// something is wrong with the store or the generator.
const maxAllocateAttempts = 5

// UpdateInput carries the mutable instruction fields. A recognized
// status value wins over the text; otherwise the text is updated.
type UpdateInput struct {
	Instruction string
	Status      string
}

// InstructionService handles instruction reads, creation, and updates.
type InstructionService interface {
	Get(ctx context.Context, id string) (*model.Instruction, error)
	Create(ctx context.Context, text string) (string, error)
	Update(ctx context.Context, id string, in UpdateInput) error
}

type instructionService struct {
	repo repository.InstructionRepository
}

// NewInstructionService creates a new instruction service.
func NewInstructionService(repo repository.InstructionRepository) InstructionService {
	return &instructionService{repo: repo}
}

// Get fetches an instruction by short code.
func (s *instructionService) Get(ctx context.Context, id string) (*model.Instruction, error) {
	if !shortid.ValidCode(id) {
		return nil, apperrors.ErrBadInstructionID
	}
	instruction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInstructionNotFound
		}
		return nil, fmt.Errorf("find instruction: %w", err)
	}
	return instruction, nil
}

// Create allocates a fresh short code and inserts the instruction under
// it. The pre-check keeps the common path to one cheap lookup, but the
// uniqueness guarantee comes from the primary key: losing a race on a
// candidate surfaces as a duplicate-key error at insert and re-rolls.
func (s *instructionService) Create(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", apperrors.ErrMissingFields
	}

	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		code, err := shortid.NewCode()
		if err != nil {
			return "", fmt.Errorf("generate short code: %w", err)
		}

		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check short code: %w", err)
		}
		if exists {
			continue
		}

		instruction := &model.Instruction{
			ID:          code,
			Instruction: text,
			Status:      model.StatusTodo,
		}
		err = s.repo.Create(ctx, instruction)
		if err == nil {
			return code, nil
		}
		if repository.IsDuplicateKey(err) {
			continue
		}
		return "", fmt.Errorf("insert instruction: %w", err)
	}
	return "", apperrors.ErrCodeSpaceExhausted
}

// Update mutates an existing instruction. An update matching zero rows
// reports not-found instead of silently succeeding.
func (s *instructionService) Update(ctx context.Context, id string, in UpdateInput) error {
	if !shortid.ValidCode(id) {
		return apperrors.ErrBadInstructionID
	}

	var (
		rows int64
		err  error
	)
	if status, ok := model.ParseStatus(in.Status); ok {
		rows, err = s.repo.UpdateStatus(ctx, id, status)
	} else {
		if in.Instruction == "" {
			return apperrors.ErrMissingFields
		}
		rows, err = s.repo.UpdateText(ctx, id, in.Instruction)
	}
	if err != nil {
		return fmt.Errorf("update instruction: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrInstructionNotFound
	}
	return nil
}
