package authz

type Role string
type Action string

const (
	RoleAdmin     Role = "admin"
	RoleSubmitter Role = "submitter"
	RoleReviewer  Role = "reviewer"
)

const (
	ActionSubmitIdea       Action = "submit_idea"
	ActionEditIdea         Action = "edit_idea"
	ActionDeleteIdea       Action = "delete_idea"
	ActionVoteIdea         Action = "vote_idea"
	ActionVoteComment      Action = "vote_comment"
	ActionComment          Action = "comment"
	ActionDeleteComment    Action = "delete_comment"
	ActionRate             Action = "rate"
	ActionAddCategory      Action = "add_category"
	ActionManageCategories Action = "manage_categories"
	ActionManageUsers      Action = "manage_users"
)

// Principal is the authenticated caller as every policy check sees it.
type Principal struct {
	ID   uint
	Role Role
}

// Authorize is the single policy gate for mutating operations. ownerID is the
// owning user of the touched resource, nil when the resource has no owner or
// the action is not ownership-scoped.
//
// Comment deletion is author-only while idea deletion is owner-or-admin; the
// asymmetry is intentional pending a product decision (see DESIGN.md).
func Authorize(p Principal, action Action, ownerID *uint) bool {
	if p.ID == 0 {
		return false
	}
	switch action {
	case ActionSubmitIdea, ActionAddCategory:
		return p.Role == RoleAdmin || p.Role == RoleSubmitter
	case ActionEditIdea, ActionDeleteIdea:
		return p.Role == RoleAdmin || owns(p, ownerID)
	case ActionDeleteComment:
		return owns(p, ownerID)
	case ActionVoteIdea:
		return p.Role == RoleAdmin || p.Role == RoleSubmitter || p.Role == RoleReviewer
	case ActionVoteComment, ActionComment, ActionRate:
		return true
	case ActionManageCategories, ActionManageUsers:
		return p.Role == RoleAdmin
	}
	return false
}

func owns(p Principal, ownerID *uint) bool {
	return ownerID != nil && *ownerID == p.ID
}

// Normalize maps arbitrary stored role strings onto a known role, falling
// back to the least privileged one.
func Normalize(role string) Role {
	switch Role(role) {
	case RoleAdmin, RoleSubmitter, RoleReviewer:
		return Role(role)
	default:
		return RoleReviewer
	}
}

// ParseRole validates a role token from user input. Unlike Normalize it
// rejects unknown tokens instead of coercing them.
func ParseRole(role string) (Role, bool) {
	switch Role(role) {
	case RoleAdmin, RoleSubmitter, RoleReviewer:
		return Role(role), true
	}
	return "", false
}
