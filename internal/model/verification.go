package model

import "time"

// VerificationCode is a time-limited code bound to an email address,
// issued before registration and checked (not consumed) during it.
type VerificationCode struct {
	Code      string    `json:"-" gorm:"primaryKey;size:16"`
	Email     string    `json:"-" gorm:"index;size:255;not null"`
	Expire    int64     `json:"-" gorm:"not null"` // unix seconds
	CreatedAt time.Time `json:"-"`
}

// Expired reports whether the code is no longer valid at the given time.
// Expiry is compared at seconds precision.
func (v *VerificationCode) Expired(now time.Time) bool {
	return v.Expire < now.Unix()
}
