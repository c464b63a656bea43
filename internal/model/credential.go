package model

import "time"

// Credential stores the bcrypt password hash for a user. It is created in
// the same transaction as the User row so neither can exist without the
// other.
type Credential struct {
	UserID       string    `json:"-" gorm:"primaryKey;size:16"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"-"`
}
