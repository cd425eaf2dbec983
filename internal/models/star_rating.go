package models

// StarRating holds one 1-5 quality rating per (idea, user). Re-rating
// overwrites the stored value in place; no history is kept.
type StarRating struct {
	ID     uint `gorm:"column:rating_id;primaryKey" json:"rating_id"`
	IdeaID uint `gorm:"not null;uniqueIndex:idx_star_ratings_idea_user" json:"idea_id"`
	Idea   Idea `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID uint `gorm:"not null;uniqueIndex:idx_star_ratings_idea_user" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Stars  int  `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
}
