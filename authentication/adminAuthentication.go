package authentication

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cmu-health/models"
)

const (
	AdminUsernameKey = "username"
	AdminClaimsKey   = "admin_claims"
)

// AdminAuth issues and checks the tokens that open the admin panel.
type AdminAuth struct {
	signer
	log logrus.FieldLogger
}

func NewAdminAuth(key string, ttl time.Duration, store TokenStore, log logrus.FieldLogger) *AdminAuth {
	return &AdminAuth{
		signer: signer{key: []byte(key), ttl: ttl, store: store, now: time.Now},
		log:    log.WithField("component", "admin_auth"),
	}
}

func (a *AdminAuth) GenerateToken(username string) (string, error) {
	claims := &models.AdminClaims{
		Username:         username,
		RegisteredClaims: a.registeredClaims(username),
	}
	return a.sign(claims)
}

func (a *AdminAuth) Authenticate(ctx context.Context, tokenString string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}
	if err := a.parse(ctx, tokenString, claims, &claims.RegisteredClaims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (a *AdminAuth) Revoke(ctx context.Context, claims *models.AdminClaims) error {
	return a.revoke(ctx, &claims.RegisteredClaims)
}

func (a *AdminAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "missing the authorization header")
			return
		}

		claims, err := a.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			rejectToken(c, a.log, err)
			return
		}
		c.Set(AdminUsernameKey, claims.Username)
		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
