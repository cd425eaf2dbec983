package services

import (
	"time"

	"github.com/gin-contrib/sessions"
)

// SubmitDraft carries the idea form values across the add-category detour,
// so nothing the user typed is lost. Drafts live in the caller's session and
// expire after a fixed TTL.
type SubmitDraft struct {
	Title       string
	Description string
	CategoryID  string
}

const (
	draftTitleKey       = "draft_title"
	draftDescriptionKey = "draft_description"
	draftCategoryKey    = "draft_category_id"
	draftExpiresKey     = "draft_expires"
)

// SaveDraft stages the form values in the session with an expiry.
func SaveDraft(session sessions.Session, draft SubmitDraft, ttl time.Duration) error {
	session.Set(draftTitleKey, draft.Title)
	session.Set(draftDescriptionKey, draft.Description)
	session.Set(draftCategoryKey, draft.CategoryID)
	session.Set(draftExpiresKey, time.Now().Add(ttl).Unix())
	return session.Save()
}

// PeekDraft returns the staged draft without consuming it. Expired or absent
// drafts come back empty.
func PeekDraft(session sessions.Session) SubmitDraft {
	expires, ok := session.Get(draftExpiresKey).(int64)
	if !ok || time.Now().Unix() > expires {
		return SubmitDraft{}
	}

	draft := SubmitDraft{}
	if v, ok := session.Get(draftTitleKey).(string); ok {
		draft.Title = v
	}
	if v, ok := session.Get(draftDescriptionKey).(string); ok {
		draft.Description = v
	}
	if v, ok := session.Get(draftCategoryKey).(string); ok {
		draft.CategoryID = v
	}
	return draft
}

// ClearDraft drops the staged values, e.g. after a successful submit.
func ClearDraft(session sessions.Session) error {
	session.Delete(draftTitleKey)
	session.Delete(draftDescriptionKey)
	session.Delete(draftCategoryKey)
	session.Delete(draftExpiresKey)
	return session.Save()
}
