package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"`            // Hash
	Role      string    `gorm:"size:20;default:'submitter';not null" json:"role"` // admin, submitter, reviewer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
