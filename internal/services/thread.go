package services

import (
	"database/sql"
	"errors"
	"time"

	"ideahub/internal/authz"
	"ideahub/internal/models"

	"gorm.io/gorm"
)

// ThreadComment is one comment of an idea's discussion, annotated for
// display. The thread is a flat chronological list; consumers rebuild the
// tree from ParentID.
type ThreadComment struct {
	ID        uint
	UserID    *uint
	Username  string
	Content   string
	ParentID  *uint
	Score     int
	CreatedAt time.Time // display time, offset already applied
}

// ThreadService assembles comment threads and handles comment writes.
// displayOffset shifts stored timestamps for display only; storage stays in
// one consistent zone.
type ThreadService struct {
	db            *gorm.DB
	displayOffset time.Duration
}

func NewThreadService(db *gorm.DB, displayOffset time.Duration) *ThreadService {
	return &ThreadService{db: db, displayOffset: displayOffset}
}

type threadRow struct {
	CommentID uint
	UserID    *uint
	Content   string
	Timestamp time.Time
	ParentID  *uint
	Username  sql.NullString
	Score     int
}

// BuildThread returns all comments of an idea ordered by creation time,
// each with its net vote score.
func (s *ThreadService) BuildThread(ideaID uint) ([]ThreadComment, error) {
	var rows []threadRow
	err := s.db.Raw(`SELECT comments.comment_id, comments.user_id, comments.content, comments.timestamp,
		comments.parent_id, users.username,
		COALESCE((SELECT SUM(vote_value) FROM comment_votes WHERE comment_votes.comment_id = comments.comment_id), 0) AS score
		FROM comments
		LEFT JOIN users ON comments.user_id = users.user_id
		WHERE comments.idea_id = ?
		ORDER BY comments.timestamp ASC`, ideaID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return annotateThread(rows, s.displayOffset), nil
}

func annotateThread(rows []threadRow, offset time.Duration) []ThreadComment {
	comments := make([]ThreadComment, len(rows))
	for i, row := range rows {
		username := row.Username.String
		if !row.Username.Valid {
			username = "deleted user"
		}
		comments[i] = ThreadComment{
			ID:        row.CommentID,
			UserID:    row.UserID,
			Username:  username,
			Content:   row.Content,
			ParentID:  row.ParentID,
			Score:     row.Score,
			CreatedAt: row.Timestamp.Add(offset),
		}
	}
	return comments
}

// AddComment creates a comment on an idea, optionally as a reply. A parent
// that does not exist is dropped rather than rejected, so the comment lands
// at the top level.
func (s *ThreadService) AddComment(ideaID, userID uint, content string, parentID *uint) (*models.Comment, error) {
	var ideas int64
	if err := s.db.Model(&models.Idea{}).Where("id = ?", ideaID).Count(&ideas).Error; err != nil {
		return nil, err
	}
	if ideas == 0 {
		return nil, ErrNotFound
	}

	if parentID != nil {
		var parents int64
		if err := s.db.Model(&models.Comment{}).Where("comment_id = ?", *parentID).Count(&parents).Error; err != nil {
			return nil, err
		}
		if parents == 0 {
			parentID = nil
		}
	}

	comment := models.Comment{
		IdeaID:   ideaID,
		UserID:   &userID,
		Content:  content,
		ParentID: parentID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment and its direct replies in one transaction.
// The policy allows only the author; deeper reply chains fall to the store's
// cascade on parent_id.
func (s *ThreadService) DeleteComment(commentID uint, requester authz.Principal) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !authz.Authorize(requester, authz.ActionDeleteComment, comment.UserID) {
			return ErrForbidden
		}

		if err := tx.Where("parent_id = ?", commentID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
}
