package models

import (
	"time"
)

// CommentVote mirrors Vote for comments, with the same one-per-(comment, user)
// toggle semantics.
type CommentVote struct {
	ID        uint      `gorm:"column:vote_id;primaryKey" json:"vote_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_votes_comment_user" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_votes_comment_user" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Value     int       `gorm:"column:vote_value;not null;check:vote_value IN (1, -1)" json:"vote_value"`
	CreatedAt time.Time `json:"created_at"`
}
