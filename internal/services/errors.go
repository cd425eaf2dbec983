package services

import "errors"

// Failure classes surfaced to handlers. Every mutating service call leaves
// the store untouched when it returns one of these.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidRange     = errors.New("stars must be between 1 and 5")
	ErrInvalidDirection = errors.New("unknown vote direction")
	ErrDuplicateTitle   = errors.New("an idea with this title already exists")
	ErrDuplicateName    = errors.New("category name already exists")
	ErrCategoryInUse    = errors.New("category is still referenced by ideas")
	ErrEmailTaken       = errors.New("email already registered")
)
