package models

import "time"

// PasswordResetToken is a single-use reset credential. Tokens expire a fixed
// interval after creation and are deleted on successful use or on
// use-after-expiry detection.
type PasswordResetToken struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"column:employee_id;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Token      string    `gorm:"column:token;type:uuid;not null;uniqueIndex" json:"token"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_token"
}

// Expired reports whether the token is past its validity window at the given
// instant.
func (t *PasswordResetToken) Expired(now time.Time, ttl time.Duration) bool {
	return t == nil || now.After(t.CreatedAt.Add(ttl))
}
