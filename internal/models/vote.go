package models

import (
	"time"
)

// Vote is an idea-level vote. One row per (idea, user), enforced by the
// composite unique index; Value is 1 or -1.
type Vote struct {
	ID        uint      `gorm:"column:vote_id;primaryKey" json:"vote_id"`
	IdeaID    uint      `gorm:"not null;uniqueIndex:idx_votes_idea_user" json:"idea_id"`
	Idea      Idea      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_idea_user" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Value     int       `gorm:"column:vote_value;not null" json:"vote_value"`
	CreatedAt time.Time `json:"created_at"`
}
