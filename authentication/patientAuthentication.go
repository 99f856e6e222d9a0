package authentication

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cmu-health/models"
)

const (
	PatientUsernameKey = "patient"
	PatientClaimsKey   = "patient_claims"
)

// PatientAuth guards the booking screen. The demo login hands a token to any
// non-empty username and password.
type PatientAuth struct {
	signer
	log logrus.FieldLogger
}

func NewPatientAuth(key string, ttl time.Duration, store TokenStore, log logrus.FieldLogger) *PatientAuth {
	return &PatientAuth{
		signer: signer{key: []byte(key), ttl: ttl, store: store, now: time.Now},
		log:    log.WithField("component", "patient_auth"),
	}
}

func (p *PatientAuth) GenerateToken(username string) (string, error) {
	claims := &models.PatientClaims{
		Username:         username,
		RegisteredClaims: p.registeredClaims(username),
	}
	return p.sign(claims)
}

func (p *PatientAuth) Authenticate(ctx context.Context, tokenString string) (*models.PatientClaims, error) {
	claims := &models.PatientClaims{}
	if err := p.parse(ctx, tokenString, claims, &claims.RegisteredClaims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (p *PatientAuth) Revoke(ctx context.Context, claims *models.PatientClaims) error {
	return p.revoke(ctx, &claims.RegisteredClaims)
}

func (p *PatientAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "User Authorization is missing")
			return
		}

		claims, err := p.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			rejectToken(c, p.log, err)
			return
		}
		c.Set(PatientUsernameKey, claims.Username)
		c.Set(PatientClaimsKey, claims)
		c.Next()
	}
}
