package services

import (
	"errors"
	"ideahub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Vote direction tokens as they arrive from the routes.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// VotingService implements the three-state vote toggle for ideas and
// comments: first vote inserts, the opposite direction flips the row, and
// repeating the same direction removes it. At most one row per
// (subject, user) exists at any time.
type VotingService struct {
	db *gorm.DB
}

func NewVotingService(db *gorm.DB) *VotingService {
	return &VotingService{db: db}
}

// voteValue maps a direction token to its stored value.
func voteValue(direction string) (int, error) {
	switch direction {
	case DirectionUp:
		return 1, nil
	case DirectionDown:
		return -1, nil
	}
	return 0, ErrInvalidDirection
}

type voteOp int

const (
	opInsert voteOp = iota
	opDelete
	opUpdate
)

// resolveToggle decides what a new vote does to the existing row (nil when
// the user has not voted on the subject yet).
func resolveToggle(prev *int, value int) voteOp {
	switch {
	case prev == nil:
		return opInsert
	case *prev == value:
		return opDelete
	default:
		return opUpdate
	}
}

// CastIdeaVote applies one toggle step for (ideaID, userID). The whole
// read-decide-write sequence runs in a single transaction with the existing
// row locked. Two concurrent first votes both read an empty row and try to
// insert; the unique index fails the loser, which reruns against the row the
// winner committed.
func (s *VotingService) CastIdeaVote(ideaID, userID uint, direction string) error {
	err := s.castIdeaVote(ideaID, userID, direction)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = s.castIdeaVote(ideaID, userID, direction)
	}
	return err
}

func (s *VotingService) castIdeaVote(ideaID, userID uint, direction string) error {
	value, err := voteValue(direction)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var ideas int64
		if err := tx.Model(&models.Idea{}).Where("id = ?", ideaID).Count(&ideas).Error; err != nil {
			return err
		}
		if ideas == 0 {
			return ErrNotFound
		}

		var existing models.Vote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("idea_id = ? AND user_id = ?", ideaID, userID).
			First(&existing).Error

		var prev *int
		if err == nil {
			prev = &existing.Value
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch resolveToggle(prev, value) {
		case opInsert:
			return tx.Create(&models.Vote{IdeaID: ideaID, UserID: userID, Value: value}).Error
		case opDelete:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("vote_value", value).Error
		}
	})
}

// CastCommentVote is the comment-side twin of CastIdeaVote.
func (s *VotingService) CastCommentVote(commentID, userID uint, direction string) error {
	err := s.castCommentVote(commentID, userID, direction)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = s.castCommentVote(commentID, userID, direction)
	}
	return err
}

func (s *VotingService) castCommentVote(commentID, userID uint, direction string) error {
	value, err := voteValue(direction)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var comments int64
		if err := tx.Model(&models.Comment{}).Where("comment_id = ?", commentID).Count(&comments).Error; err != nil {
			return err
		}
		if comments == 0 {
			return ErrNotFound
		}

		var existing models.CommentVote
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			First(&existing).Error

		var prev *int
		if err == nil {
			prev = &existing.Value
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch resolveToggle(prev, value) {
		case opInsert:
			return tx.Create(&models.CommentVote{CommentID: commentID, UserID: userID, Value: value}).Error
		case opDelete:
			return tx.Delete(&existing).Error
		default:
			return tx.Model(&existing).Update("vote_value", value).Error
		}
	})
}

// IdeaScore returns the net score of an idea: the sum of its ±1 vote values,
// 0 when nobody voted. Always recomputed from the vote rows.
func (s *VotingService) IdeaScore(ideaID uint) (int, error) {
	var score int
	err := s.db.Raw("SELECT COALESCE(SUM(vote_value), 0) FROM votes WHERE idea_id = ?", ideaID).
		Scan(&score).Error
	return score, err
}

// CommentScore returns the net score of a single comment.
func (s *VotingService) CommentScore(commentID uint) (int, error) {
	var score int
	err := s.db.Raw("SELECT COALESCE(SUM(vote_value), 0) FROM comment_votes WHERE comment_id = ?", commentID).
		Scan(&score).Error
	return score, err
}
