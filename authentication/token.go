package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrRevocationUnavailable means the token could not be checked against
	// the revocation store. The token itself may be fine.
	ErrRevocationUnavailable = errors.New("token revocation store unavailable")
)

// signer holds what both the admin and the patient tokens share: an HMAC key,
// a lifetime and the store logged-out tokens are parked in.
type signer struct {
	key   []byte
	ttl   time.Duration
	store TokenStore
	now   func() time.Time
}

func (s *signer) registeredClaims(subject string) jwt.RegisteredClaims {
	now := s.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
}

func (s *signer) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// parse verifies signature and expiry into claims, then checks the revocation
// store. registered must point at the RegisteredClaims embedded in claims.
func (s *signer) parse(ctx context.Context, tokenString string, claims jwt.Claims, registered *jwt.RegisteredClaims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}

	if registered.ID == "" {
		return ErrInvalidToken
	}
	revoked, err := s.store.IsRevoked(ctx, registered.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRevocationUnavailable, err)
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

// revoke parks the token id until the token would have expired anyway.
func (s *signer) revoke(ctx context.Context, registered *jwt.RegisteredClaims) error {
	if registered.ID == "" || registered.ExpiresAt == nil {
		return ErrInvalidToken
	}
	ttl := registered.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.store.Revoke(ctx, registered.ID, ttl)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer")), true
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// rejectToken aborts a request whose token failed Authenticate. A store outage
// is a server fault and answers 503 instead of blaming the token.
func rejectToken(c *gin.Context, log logrus.FieldLogger, err error) {
	switch {
	case errors.Is(err, ErrRevocationUnavailable):
		log.WithError(err).Error("cannot check token revocation")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "authentication temporarily unavailable"})
	case errors.Is(err, ErrTokenRevoked):
		log.WithError(err).Debug("token rejected")
		abortUnauthorized(c, "token has been revoked")
	default:
		log.WithError(err).Debug("token rejected")
		abortUnauthorized(c, "invalid token")
	}
}
