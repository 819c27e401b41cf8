package service

import "errors"

// Sentinel errors returned by service methods for boundary-rule breaches.
// Storage-level failures (store.ErrNotFound, store.ErrConstraintViolation
// and friends) pass through wrapped, so callers match those against the
// store package's sentinels.
var (
	// ErrInvalidDataProvided is returned when a required input field is
	// empty or otherwise unusable before any storage call is made.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Authenticate when the candidate
	// password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotArticleAuthor is returned when a caller tries to modify or
	// delete an article they do not own.
	ErrNotArticleAuthor = errors.New("user is not the article author")

	// ErrNotCommentAuthor is returned when a caller tries to delete a
	// comment they did not write.
	ErrNotCommentAuthor = errors.New("user is not the comment author")
)
