package auth

import (
	"context"

	"github.com/google/uuid"
)

// fakeRepo is an in-memory user repository used by the service and router tests.
type fakeRepo struct {
	users map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) Create(_ context.Context, username, passwordHash string) (*User, error) {
	if _, ok := f.users[username]; ok {
		return nil, ErrUsernameTaken
	}
	user := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	f.users[username] = user
	return user, nil
}

func (f *fakeRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
