package services

import (
	"sort"
	"time"
)

// IdeaSummary is one row of the ranked idea listing. Stars and Score come
// from the rating and voting engines, never from stored columns.
type IdeaSummary struct {
	ID           uint
	Title        string
	Category     string
	Submitter    string
	Stars        float64 // average, rounded to 1 decimal
	Score        int     // net vote score
	SubmittedAt  time.Time
	CommentCount int
}

// RankIdeas orders summaries by average stars descending, then net score
// descending, then submission time ascending (oldest first). The sort is
// stable: rows tied on all three keys keep their encounter order.
func RankIdeas(ideas []IdeaSummary) []IdeaSummary {
	sort.SliceStable(ideas, func(i, j int) bool {
		a, b := ideas[i], ideas[j]
		if a.Stars != b.Stars {
			return a.Stars > b.Stars
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.SubmittedAt.Before(b.SubmittedAt)
	})
	return ideas
}
