package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andrasnagy-data/campsite/internal/shared/config"
)

// Service implements registration, login and token verification on top of the
// user repository. The signing secret and token lifetime come from the config
// struct built at startup.
type Service struct {
	repo     repoer
	secret   []byte
	tokenTTL time.Duration
}

func NewService(repo repoer, cfg *config.Config) *Service {
	ttl := cfg.AccessTokenTTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &Service{
		repo:     repo,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: ttl,
	}
}

// Register creates a new user with a bcrypt-hashed password. The existence
// check and the insert are two statements; the unique index on username
// catches the race between them.
func (s *Service) Register(ctx context.Context, username, password string) error {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, username, string(hash))
	return err
}

// Login validates the credentials and mints an access token for the user.
// Unknown username and wrong password collapse to the same error.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return IssueToken(user.Username, s.secret, s.tokenTTL)
}

// VerifyToken checks signature and expiry, then confirms the subject still
// resolves to a stored user. Returns the subject username.
func (s *Service) VerifyToken(ctx context.Context, token string) (string, error) {
	subject, err := ParseSubject(token, s.secret)
	if err != nil {
		return "", err
	}

	if _, err := s.repo.GetByUsername(ctx, subject); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidUser
		}
		return "", err
	}

	return subject, nil
}
