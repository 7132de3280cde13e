package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// defaultTokenTTL applies when a caller asks for a token without a validity duration.
const defaultTokenTTL = 15 * time.Minute

// IssueToken mints an HS256-signed token carrying the subject and an absolute
// expiry of now + ttl. The ttl is honored as given; a zero or negative ttl
// yields an already-expired token.
func IssueToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSubject validates the token's signature and expiry and returns its
// subject. Every failure mode collapses to ErrInvalidToken so the response
// never reveals whether the token was malformed, forged or merely expired.
func ParseSubject(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
