package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
}

func TestRankIdeasOrdering(t *testing.T) {
	ideas := []IdeaSummary{
		{ID: 1, Title: "A", Stars: 4.0, Score: 3, SubmittedAt: day(1)},
		{ID: 2, Title: "B", Stars: 4.0, Score: 5, SubmittedAt: day(2)},
		{ID: 3, Title: "C", Stars: 5.0, Score: 0, SubmittedAt: day(3)},
	}

	ranked := RankIdeas(ideas)

	assert.Equal(t, []uint{3, 2, 1}, ids(ranked))
}

func TestRankIdeasScoreBreaksStarTies(t *testing.T) {
	ideas := []IdeaSummary{
		{ID: 1, Stars: 3.5, Score: -2, SubmittedAt: day(1)},
		{ID: 2, Stars: 3.5, Score: 10, SubmittedAt: day(2)},
	}

	assert.Equal(t, []uint{2, 1}, ids(RankIdeas(ideas)))
}

func TestRankIdeasOlderWinsFullTie(t *testing.T) {
	ideas := []IdeaSummary{
		{ID: 1, Stars: 4.0, Score: 2, SubmittedAt: day(9)},
		{ID: 2, Stars: 4.0, Score: 2, SubmittedAt: day(3)},
	}

	assert.Equal(t, []uint{2, 1}, ids(RankIdeas(ideas)))
}

func TestRankIdeasStableOnIdenticalKeys(t *testing.T) {
	at := day(5)
	ideas := []IdeaSummary{
		{ID: 10, Stars: 4.0, Score: 1, SubmittedAt: at},
		{ID: 11, Stars: 4.0, Score: 1, SubmittedAt: at},
		{ID: 12, Stars: 4.0, Score: 1, SubmittedAt: at},
	}

	assert.Equal(t, []uint{10, 11, 12}, ids(RankIdeas(ideas)))
}

func TestRankIdeasUnratedSortsBelowRated(t *testing.T) {
	ideas := []IdeaSummary{
		{ID: 1, Stars: 0, Score: 100, SubmittedAt: day(1)},
		{ID: 2, Stars: 1.0, Score: -5, SubmittedAt: day(2)},
	}

	assert.Equal(t, []uint{2, 1}, ids(RankIdeas(ideas)))
}

func ids(ideas []IdeaSummary) []uint {
	out := make([]uint, len(ideas))
	for i, idea := range ideas {
		out[i] = idea.ID
	}
	return out
}
