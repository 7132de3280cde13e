package auth

import "errors"

var (
	// ErrUserNotFound is returned by the repository when no row matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned on registration when the username exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken covers malformed, badly signed and expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidUser is returned when a token's subject no longer resolves to a user.
	ErrInvalidUser = errors.New("invalid user")
)
