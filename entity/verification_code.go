package entity

import "time"

// VerificationCode stores a bcrypt hash of an OTP code, never the plaintext.
// A row is single-use: Verified flips true on successful verification and the
// row is excluded from every later lookup.
type VerificationCode struct {
	BaseEntity
	Phone     string    `json:"phone" gorm:"type:varchar(20);not null;index"`
	CodeHash  string    `json:"-" gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	Verified  bool      `json:"verified" gorm:"default:false"`
}

// Expired matches the lookup filter: a code is usable only while
// expires_at is strictly in the future.
func (vc *VerificationCode) Expired(now time.Time) bool {
	return !vc.ExpiresAt.After(now)
}
