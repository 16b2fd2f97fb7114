package services

import "errors"

var (
	// ErrInvalidCredentials is returned when no roster identity matches.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrEmptyContent is returned by Add when content trims to nothing.
	ErrEmptyContent = errors.New("entry content is empty")
	// ErrNothingToShare is returned when sharing an empty collection.
	ErrNothingToShare = errors.New("no entries to share")
	// ErrNotLoggedIn is returned by entry operations before Load.
	ErrNotLoggedIn = errors.New("not logged in")
)
