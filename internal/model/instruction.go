package model

import "time"

// InstructionStatus is the lifecycle state of an instruction.
type InstructionStatus string

// Instruction lifecycle states.
const (
	StatusTodo    InstructionStatus = "todo"
	StatusCurrent InstructionStatus = "current"
	StatusDone    InstructionStatus = "done"
)

// ParseStatus returns the status named by s, or false when s is not a
// recognized status value.
func ParseStatus(s string) (InstructionStatus, bool) {
	switch InstructionStatus(s) {
	case StatusTodo, StatusCurrent, StatusDone:
		return InstructionStatus(s), true
	}
	return "", false
}

// Instruction is a task shared under a 6-character lowercase alphanumeric
// short code. The code doubles as the primary key so it can be used in
// shareable URLs in place of an auto-increment id.
type Instruction struct {
	ID          string            `json:"id" gorm:"primaryKey;size:6"`
	Instruction string            `json:"instruction" gorm:"type:text;not null"`
	Status      InstructionStatus `json:"status" gorm:"size:16;not null;default:'todo'"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Done collapses the three-state status into the binary flag older
// clients expect: 1 when the instruction is done, 0 otherwise.
func (i *Instruction) Done() int {
	if i.Status == StatusDone {
		return 1
	}
	return 0
}
