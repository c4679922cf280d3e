package usecase

import "errors"

var (
	// ErrNotAllowed is returned when the acting user is neither the room's
	// host (on update) nor the message's author (on delete).
	ErrNotAllowed = errors.New("you are not allowed here")

	// ErrInvalidCredentials deliberately covers both unknown usernames and
	// wrong passwords so login failures never enumerate users.
	ErrInvalidCredentials = errors.New("username or password does not exist")
)
