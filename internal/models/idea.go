package models

import (
	"time"
)

type Idea struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"` // case-insensitively unique, enforced in the idea service
	Description    string    `gorm:"type:text;not null" json:"description"`
	CategoryID     *uint     `gorm:"index" json:"category_id"`
	Category       *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	SubmitterID    *uint     `gorm:"index" json:"submitter_id"`
	Submitter      *User     `gorm:"foreignKey:SubmitterID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"submitter"`
	SubmissionDate time.Time `gorm:"column:submission_date;autoCreateTime" json:"submission_date"`
}
