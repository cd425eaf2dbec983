package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestVoteValue(t *testing.T) {
	v, err := voteValue(DirectionUp)
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = voteValue(DirectionDown)
	assert.NoError(t, err)
	assert.Equal(t, -1, v)

	_, err = voteValue("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = voteValue("")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestResolveToggle(t *testing.T) {
	up, down := 1, -1

	assert.Equal(t, opInsert, resolveToggle(nil, 1))
	assert.Equal(t, opInsert, resolveToggle(nil, -1))
	assert.Equal(t, opDelete, resolveToggle(&up, 1))
	assert.Equal(t, opDelete, resolveToggle(&down, -1))
	assert.Equal(t, opUpdate, resolveToggle(&up, -1))
	assert.Equal(t, opUpdate, resolveToggle(&down, 1))
}

func TestCastIdeaVoteRejectsBadDirection(t *testing.T) {
	// Direction is validated before the store is touched.
	svc := NewVotingService(nil)
	assert.ErrorIs(t, svc.CastIdeaVote(1, 1, "left"), ErrInvalidDirection)
	assert.ErrorIs(t, svc.CastCommentVote(1, 1, "left"), ErrInvalidDirection)
}

func oneIdea(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "ideas"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
}

func noVoteRow(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT \* FROM "votes" WHERE idea_id = \$1 AND user_id = \$2 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"vote_id", "idea_id", "user_id", "vote_value", "created_at"}))
}

func existingVoteRow(mock sqlmock.Sqlmock, value int) {
	mock.ExpectQuery(`SELECT \* FROM "votes" WHERE idea_id = \$1 AND user_id = \$2 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"vote_id", "idea_id", "user_id", "vote_value", "created_at"}).
			AddRow(1, 1, 2, value, time.Now()))
}

func TestCastIdeaVoteFirstVoteInserts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectBegin()
	oneIdea(mock)
	noVoteRow(mock)
	mock.ExpectQuery(`INSERT INTO "votes"`).
		WillReturnRows(sqlmock.NewRows([]string{"vote_id"}).AddRow(1))
	mock.ExpectCommit()

	assert.NoError(t, svc.CastIdeaVote(1, 2, DirectionUp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCastIdeaVoteRepeatRemovesRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectBegin()
	oneIdea(mock)
	existingVoteRow(mock, 1)
	mock.ExpectExec(`DELETE FROM "votes"`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Voting up twice ends with no vote row at all.
	assert.NoError(t, svc.CastIdeaVote(1, 2, DirectionUp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCastIdeaVoteOppositeFlipsRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectBegin()
	oneIdea(mock)
	existingVoteRow(mock, 1)
	mock.ExpectExec(`UPDATE "votes" SET "vote_value"`).
		WithArgs(-1, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// An up vote followed by a down vote keeps one row, now holding -1.
	assert.NoError(t, svc.CastIdeaVote(1, 2, DirectionDown))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCastIdeaVoteMissingIdea(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "ideas"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	assert.ErrorIs(t, svc.CastIdeaVote(99, 2, DirectionUp), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCastIdeaVoteRetriesAfterInsertRace(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	// First attempt loses the insert race on the unique (idea_id, user_id)
	// index; the retry sees the committed row and toggles it off.
	mock.ExpectBegin()
	oneIdea(mock)
	noVoteRow(mock)
	mock.ExpectQuery(`INSERT INTO "votes"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	mock.ExpectBegin()
	oneIdea(mock)
	existingVoteRow(mock, 1)
	mock.ExpectExec(`DELETE FROM "votes"`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.CastIdeaVote(1, 2, DirectionUp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCastCommentVoteFirstVoteInserts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "comment_votes" WHERE comment_id = \$1 AND user_id = \$2 .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"vote_id", "comment_id", "user_id", "vote_value", "created_at"}))
	mock.ExpectQuery(`INSERT INTO "comment_votes"`).
		WillReturnRows(sqlmock.NewRows([]string{"vote_id"}).AddRow(1))
	mock.ExpectCommit()

	assert.NoError(t, svc.CastCommentVote(1, 2, DirectionUp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCastCommentVoteMissingComment(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	assert.ErrorIs(t, svc.CastCommentVote(99, 2, DirectionUp), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdeaScore(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(vote_value), 0) FROM votes WHERE idea_id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	score, err := svc.IdeaScore(42)
	assert.NoError(t, err)
	assert.Equal(t, 3, score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdeaScoreNoVotes(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(vote_value), 0) FROM votes WHERE idea_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	score, err := svc.IdeaScore(7)
	assert.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentScore(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewVotingService(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(vote_value), 0) FROM comment_votes WHERE comment_id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(-2))

	score, err := svc.CommentScore(9)
	assert.NoError(t, err)
	assert.Equal(t, -2, score)
	assert.NoError(t, mock.ExpectationsWereMet())
}
