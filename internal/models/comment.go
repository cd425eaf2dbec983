package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	IdeaID    uint      `gorm:"not null;index" json:"idea_id"`
	Idea      Idea      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id"` // NULL once the author is deleted
	User      *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ParentID  *uint     `gorm:"index" json:"parent_id"` // NULL for top-level comments
	Parent    *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"column:timestamp" json:"timestamp"`
}
