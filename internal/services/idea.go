package services

import (
	"errors"
	"strings"

	"ideahub/internal/authz"
	"ideahub/internal/models"

	"gorm.io/gorm"
)

// IdeaService handles idea CRUD and the ranked listing. Listing composes the
// voting and rating engines per idea, then sorts in memory.
type IdeaService struct {
	db     *gorm.DB
	voting *VotingService
	rating *RatingService
}

func NewIdeaService(db *gorm.DB, voting *VotingService, rating *RatingService) *IdeaService {
	return &IdeaService{db: db, voting: voting, rating: rating}
}

// Create inserts a new idea. Titles are unique ignoring case; a clash fails
// with ErrDuplicateTitle and writes nothing.
func (s *IdeaService) Create(submitterID uint, title, description string, categoryID *uint) (*models.Idea, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	var clashes int64
	if err := s.db.Model(&models.Idea{}).Where("LOWER(title) = LOWER(?)", title).Count(&clashes).Error; err != nil {
		return nil, err
	}
	if clashes > 0 {
		return nil, ErrDuplicateTitle
	}

	idea := models.Idea{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		SubmitterID: &submitterID,
	}
	if err := s.db.Create(&idea).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// Get loads one idea with its category and submitter.
func (s *IdeaService) Get(id uint) (*models.Idea, error) {
	var idea models.Idea
	err := s.db.Preload("Category").Preload("Submitter").First(&idea, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &idea, nil
}

// Update rewrites title, description and category. Only the owner or an
// admin may edit; the case-insensitive title invariant holds against every
// other idea.
func (s *IdeaService) Update(requester authz.Principal, id uint, title, description string, categoryID *uint) error {
	idea, err := s.Get(id)
	if err != nil {
		return err
	}
	if !authz.Authorize(requester, authz.ActionEditIdea, idea.SubmitterID) {
		return ErrForbidden
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	var clashes int64
	if err := s.db.Model(&models.Idea{}).
		Where("LOWER(title) = LOWER(?) AND id <> ?", title, id).
		Count(&clashes).Error; err != nil {
		return err
	}
	if clashes > 0 {
		return ErrDuplicateTitle
	}

	result := s.db.Model(&models.Idea{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"category_id": categoryID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an idea together with its votes and comments in one
// transaction. The policy allows the owner or an admin; comment votes fall
// with their comments via the store cascade, and the submitter and category
// are untouched.
func (s *IdeaService) Delete(requester authz.Principal, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var idea models.Idea
		if err := tx.First(&idea, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !authz.Authorize(requester, authz.ActionDeleteIdea, idea.SubmitterID) {
			return ErrForbidden
		}

		if err := tx.Where("idea_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&idea).Error
	})
}

// List returns idea summaries ranked by stars, score and age. search, when
// non-empty, narrows by title or description.
func (s *IdeaService) List(search string) ([]IdeaSummary, error) {
	query := s.db.Preload("Category").Preload("Submitter")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var ideas []models.Idea
	if err := query.Find(&ideas).Error; err != nil {
		return nil, err
	}

	summaries := make([]IdeaSummary, 0, len(ideas))
	for _, idea := range ideas {
		stars, err := s.rating.AverageStars(idea.ID)
		if err != nil {
			return nil, err
		}
		score, err := s.voting.IdeaScore(idea.ID)
		if err != nil {
			return nil, err
		}

		summary := IdeaSummary{
			ID:          idea.ID,
			Title:       idea.Title,
			Stars:       stars,
			Score:       score,
			SubmittedAt: idea.SubmissionDate,
		}
		if idea.Category != nil {
			summary.Category = idea.Category.Name
		}
		if idea.Submitter != nil {
			summary.Submitter = idea.Submitter.Username
		}

		var comments int64
		if err := s.db.Model(&models.Comment{}).Where("idea_id = ?", idea.ID).Count(&comments).Error; err != nil {
			return nil, err
		}
		summary.CommentCount = int(comments)

		summaries = append(summaries, summary)
	}

	return RankIdeas(summaries), nil
}
