package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v uint) *uint { return &v }

func TestAuthorizeRejectsAnonymous(t *testing.T) {
	anon := Principal{}
	for _, action := range []Action{ActionSubmitIdea, ActionVoteIdea, ActionComment, ActionRate, ActionManageUsers} {
		assert.False(t, Authorize(anon, action, nil), string(action))
	}
}

func TestAuthorizeSubmit(t *testing.T) {
	assert.True(t, Authorize(Principal{ID: 1, Role: RoleAdmin}, ActionSubmitIdea, nil))
	assert.True(t, Authorize(Principal{ID: 2, Role: RoleSubmitter}, ActionSubmitIdea, nil))
	assert.False(t, Authorize(Principal{ID: 3, Role: RoleReviewer}, ActionSubmitIdea, nil))

	assert.True(t, Authorize(Principal{ID: 2, Role: RoleSubmitter}, ActionAddCategory, nil))
	assert.False(t, Authorize(Principal{ID: 3, Role: RoleReviewer}, ActionAddCategory, nil))
}

func TestAuthorizeIdeaOwnership(t *testing.T) {
	owner := Principal{ID: 7, Role: RoleSubmitter}
	other := Principal{ID: 8, Role: RoleSubmitter}
	admin := Principal{ID: 1, Role: RoleAdmin}

	for _, action := range []Action{ActionEditIdea, ActionDeleteIdea} {
		assert.True(t, Authorize(owner, action, ptr(7)), string(action))
		assert.False(t, Authorize(other, action, ptr(7)), string(action))
		assert.True(t, Authorize(admin, action, ptr(7)), string(action))
		assert.False(t, Authorize(other, action, nil), string(action))
	}
}

func TestAuthorizeCommentDeleteIsAuthorOnly(t *testing.T) {
	author := Principal{ID: 7, Role: RoleReviewer}
	admin := Principal{ID: 1, Role: RoleAdmin}

	assert.True(t, Authorize(author, ActionDeleteComment, ptr(7)))
	assert.False(t, Authorize(admin, ActionDeleteComment, ptr(7)))
	assert.False(t, Authorize(author, ActionDeleteComment, nil))
}

func TestAuthorizeVoteAndRate(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleSubmitter, RoleReviewer} {
		p := Principal{ID: 5, Role: role}
		assert.True(t, Authorize(p, ActionVoteIdea, nil), string(role))
		assert.True(t, Authorize(p, ActionVoteComment, nil), string(role))
		assert.True(t, Authorize(p, ActionComment, nil), string(role))
		assert.True(t, Authorize(p, ActionRate, nil), string(role))
	}
}

func TestAuthorizeAdminOnly(t *testing.T) {
	for _, action := range []Action{ActionManageCategories, ActionManageUsers} {
		assert.True(t, Authorize(Principal{ID: 1, Role: RoleAdmin}, action, nil), string(action))
		assert.False(t, Authorize(Principal{ID: 2, Role: RoleSubmitter}, action, nil), string(action))
		assert.False(t, Authorize(Principal{ID: 3, Role: RoleReviewer}, action, nil), string(action))
	}
}

func TestAuthorizeUnknownAction(t *testing.T) {
	assert.False(t, Authorize(Principal{ID: 1, Role: RoleAdmin}, Action("bogus"), nil))
}

func TestParseRole(t *testing.T) {
	for _, role := range []string{"admin", "submitter", "reviewer"} {
		got, ok := ParseRole(role)
		assert.True(t, ok, role)
		assert.Equal(t, Role(role), got)
	}

	for _, role := range []string{"superuser", "Admin", ""} {
		_, ok := ParseRole(role)
		assert.False(t, ok, role)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, RoleAdmin, Normalize("admin"))
	assert.Equal(t, RoleSubmitter, Normalize("submitter"))
	assert.Equal(t, RoleReviewer, Normalize("reviewer"))
	assert.Equal(t, RoleReviewer, Normalize("superuser"))
	assert.Equal(t, RoleReviewer, Normalize(""))
}
