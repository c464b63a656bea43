package model

import "time"

// Roles a user can register with.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// ValidRole reports whether role names a recognized user role.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// User represents a registered member of the platform.
// The ID is an opaque string allocated at registration ("user_" plus a
// random alphanumeric suffix) and never changes afterwards.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:16"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Role      string    `json:"role" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"created_at"`
}
