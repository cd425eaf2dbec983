package services

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/stretchr/testify/assert"
)

// memSession is an in-memory sessions.Session for exercising the draft
// helpers without a cookie store.
type memSession struct {
	values map[interface{}]interface{}
	saves  int
}

func newMemSession() *memSession {
	return &memSession{values: make(map[interface{}]interface{})}
}

func (s *memSession) ID() string                                { return "test" }
func (s *memSession) Get(key interface{}) interface{}           { return s.values[key] }
func (s *memSession) Set(key interface{}, val interface{})      { s.values[key] = val }
func (s *memSession) Delete(key interface{})                    { delete(s.values, key) }
func (s *memSession) Clear()                                    { s.values = make(map[interface{}]interface{}) }
func (s *memSession) AddFlash(value interface{}, vars ...string) {}
func (s *memSession) Flashes(vars ...string) []interface{}      { return nil }
func (s *memSession) Options(sessions.Options)                  {}
func (s *memSession) Save() error                               { s.saves++; return nil }

type failingSession struct{ *memSession }

func (s *failingSession) Save() error { return errors.New("session store unavailable") }

func TestDraftSaveErrorsPropagate(t *testing.T) {
	session := &failingSession{newMemSession()}

	assert.Error(t, SaveDraft(session, SubmitDraft{Title: "Lost"}, time.Minute))
	assert.Error(t, ClearDraft(session))
}

func TestSaveAndPeekDraft(t *testing.T) {
	session := newMemSession()
	draft := SubmitDraft{Title: "Bike racks", Description: "More of them", CategoryID: "2"}

	assert.NoError(t, SaveDraft(session, draft, 15*time.Minute))
	assert.Equal(t, 1, session.saves)

	got := PeekDraft(session)
	assert.Equal(t, draft, got)

	// Peek does not consume; a second read sees the same draft.
	assert.Equal(t, draft, PeekDraft(session))
}

func TestPeekDraftExpired(t *testing.T) {
	session := newMemSession()
	draft := SubmitDraft{Title: "Stale", Description: "Too late"}

	assert.NoError(t, SaveDraft(session, draft, -time.Minute))
	assert.Equal(t, SubmitDraft{}, PeekDraft(session))
}

func TestPeekDraftAbsent(t *testing.T) {
	assert.Equal(t, SubmitDraft{}, PeekDraft(newMemSession()))
}

func TestClearDraft(t *testing.T) {
	session := newMemSession()
	assert.NoError(t, SaveDraft(session, SubmitDraft{Title: "Gone soon"}, time.Hour))
	assert.NoError(t, ClearDraft(session))
	assert.Equal(t, SubmitDraft{}, PeekDraft(session))
	assert.Empty(t, session.values)
}
