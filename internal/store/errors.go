package store

import "errors"

// Validation errors surfaced to the user as transient notifications.
// When one is returned, nothing has been written.
var (
	ErrFutureDate    = errors.New("entries cannot be saved for future dates")
	ErrMissingMood   = errors.New("a mood must be selected")
	ErrEmptyStory    = errors.New("the story cannot be empty")
	ErrImageTooLarge = errors.New("image must be smaller than 5MB")
)
