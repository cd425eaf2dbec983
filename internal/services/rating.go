package services

import (
	"database/sql"
	"ideahub/internal/models"
	"ideahub/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingService keeps one 1-5 star rating per (idea, user) pair.
type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// SetRating upserts the caller's rating in a single statement. Out-of-range
// stars fail with ErrInvalidRange before anything is written; storage errors
// (including ratings on missing ideas, which trip the foreign key) propagate
// to the caller.
func (s *RatingService) SetRating(ideaID, userID uint, stars int) error {
	if stars < 1 || stars > 5 {
		return ErrInvalidRange
	}

	rating := models.StarRating{IdeaID: ideaID, UserID: userID, Stars: stars}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idea_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"stars": stars}),
	}).Create(&rating).Error
}

// AverageStars returns the mean rating of an idea rounded to one decimal
// place, 0 when nobody has rated it.
func (s *RatingService) AverageStars(ideaID uint) (float64, error) {
	var avg sql.NullFloat64
	err := s.db.Raw("SELECT AVG(stars) FROM star_ratings WHERE idea_id = ?", ideaID).
		Scan(&avg).Error
	if err != nil || !avg.Valid {
		return 0, err
	}
	return utils.Round1(avg.Float64), nil
}

// UserStars returns the caller's own rating for an idea, 0 when absent.
func (s *RatingService) UserStars(ideaID, userID uint) (int, error) {
	var rating models.StarRating
	err := s.db.Where("idea_id = ? AND user_id = ?", ideaID, userID).First(&rating).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return rating.Stars, nil
}
