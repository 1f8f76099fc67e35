package db

import "errors"

// Domain-level database error sentinels.
var (
	// Suggestion errors
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrAlreadyReviewed    = errors.New("suggestion has already been reviewed")
	ErrSubmissionLimit    = errors.New("submission limit reached for this address")
)
